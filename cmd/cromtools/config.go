package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/rsanders/cromTools/cromwell"
	"github.com/vertgenlab/gonomics/exception"
)

func configUsage(configFlags *flag.FlagSet) {
	fmt.Print(
		"config - generate a Cromwell configuration file for running CWL pipelines locally or on HPC schedulers\n\n" +
			"The configuration is written to workDir/bcbio-cromwell.conf and the java flags\n" +
			"for the Cromwell driver process print to stdout, one per line.\n\n" +
			"Usage:\n" +
			"  cromtools config [options] -workDir /path/to/run\n\n" +
			"Options:\n")
	configFlags.PrintDefaults()
}

// resourceArgs accumulates -r flags so overrides can be declared more than once.
type resourceArgs []string

// String to satisfy flag.Value interface
func (r *resourceArgs) String() string {
	return strings.Join(*r, " ")
}

// Set to satisfy flag.Value interface
func (r *resourceArgs) Set(value string) error {
	*r = append(*r, value)
	return nil
}

func runConfig(args []string) {
	configFlags := flag.NewFlagSet("config", flag.ExitOnError)

	var resources resourceArgs
	configFlags.Var(&resources, "r", "Resource override as key=value, optionally ;-joined. Can be declared more than once.")
	scheduler := configFlags.String("scheduler", "", "HPC scheduler to submit jobs to. One of slurm, sge, lsf, torque, pbspro. Leave empty to run on the local machine.")
	queue := configFlags.String("q", "", "Queue to submit jobs to. Required when -scheduler is set.")
	noContainer := configFlags.Bool("noContainer", false, "Run tools directly without docker containers.")
	workDir := configFlags.String("workDir", ".", "Working directory for the Cromwell run.")

	err := configFlags.Parse(args)
	exception.PanicOnErr(err)
	configFlags.Usage = func() { configUsage(configFlags) }

	sched, err := cromwell.ParseScheduler(*scheduler)
	if err != nil {
		configFlags.Usage()
		errExit("\nERROR: " + err.Error())
	}

	req := cromwell.Request{Scheduler: sched, Queue: *queue, Resources: resources, NoContainer: *noContainer}
	rendered, err := cromwell.Render(req, *workDir)
	if err != nil {
		configFlags.Usage()
		errExit("\nERROR: " + err.Error())
	}
	log.Printf("wrote %s\n", rendered.Path)
	for _, arg := range cromwell.ClArgs(req) {
		fmt.Println(arg)
	}
}
