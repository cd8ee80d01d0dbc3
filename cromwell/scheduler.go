// Package cromwell generates configuration files and java driver arguments
// for running Cromwell workflows locally or on HPC schedulers.
package cromwell

import (
	"fmt"
)

// Scheduler identifies an HPC batch system supported for Cromwell job submission.
// The zero value means no scheduler: jobs run on the local machine.
type Scheduler string

const (
	Local  Scheduler = ""
	SLURM  Scheduler = "slurm"
	SGE    Scheduler = "sge"
	LSF    Scheduler = "lsf"
	Torque Scheduler = "torque"
	PBSPro Scheduler = "pbspro"
)

// ParseScheduler converts a scheduler name from the command line into a
// Scheduler. An empty name selects local execution.
func ParseScheduler(name string) (Scheduler, error) {
	s := Scheduler(name)
	if s == Local {
		return Local, nil
	}
	if _, ok := schedulerTable[s]; !ok {
		return Local, UnsupportedSchedulerError{Name: name}
	}
	return s, nil
}

type UnsupportedSchedulerError struct {
	Name string
}

func (e UnsupportedSchedulerError) Error() string {
	return fmt.Sprintf("scheduler not yet supported by Cromwell: '%s'", e.Name)
}

type MissingQueueError struct {
	Scheduler Scheduler
}

func (e MissingQueueError) Error() string {
	return fmt.Sprintf("need to set queue (-q) for running with an HPC scheduler (%s)", e.Scheduler)
}

// customSub rewrites a bare resource token into a fixed key/value pair,
// overriding the scheduler's default for that key.
type customSub struct {
	key string
	val string
}

// schedulerEntry carries everything specific to one scheduler: template
// default values, literal prefixes applied to override values, bare-token
// substitutions, and the backend configuration template itself.
type schedulerEntry struct {
	defaults map[string]string
	prefixes map[string]string
	custom   map[string]customSub
	template string
}

// schedulerTable is the full set of schedulers Cromwell can submit to.
// LSF is accepted but carries no backend template: runs get only the generic
// top-level configuration.
var schedulerTable = map[Scheduler]schedulerEntry{
	SLURM: {
		defaults: map[string]string{"timelimit": "1-00:00", "account": ""},
		prefixes: map[string]string{"account": "-A "},
		template: slurmTemplate,
	},
	SGE: {
		defaults: map[string]string{"memtype": "mem_type", "pename": "smp"},
		template: sgeTemplate,
	},
	LSF: {},
	Torque: {
		defaults: map[string]string{"walltime": "1-00:00", "account": ""},
		template: torqueTemplate,
	},
	PBSPro: {
		defaults: map[string]string{
			"walltime":    "1-00:00",
			"account":     "",
			"cpu_and_mem": "-l select=1:ncpus=${cpu}:mem=${memory_mb}mb",
		},
		prefixes: map[string]string{"account": "-A "},
		custom: map[string]customSub{
			"noselect": {key: "cpu_and_mem", val: "-l ncpus=${cpu} -l mem=${memory_mb}mb"},
		},
		template: pbsproTemplate,
	},
}
