package cromwell

import (
	"strings"
	"text/template"
)

// fill renders one of the fixed configuration templates against string
// params. Placeholders use text/template syntax over a flat map; Cromwell's
// own ${...} runtime variables pass through untouched.
func fill(body string, params map[string]string) (string, error) {
	t, err := template.New("config").Option("missingkey=error").Parse(body)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err = t.Execute(&sb, params); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// The template bodies below are fixed external-format text consumed by
// Cromwell's HOCON parser. Whitespace and indentation are deliberate; do not
// reformat.

const filesystemConfig = `
      filesystems {
        local {
          localization: ["soft-link"]
          caching {
            duplication-strategy: ["soft-link"]
            hashing-strategy: "path"
          }
        }
      }
`

const mainTemplate = `
include required(classpath("application"))

system {
  workflow-restart = true
}
call-caching {
  enabled = true
}

database {
  profile = "slick.jdbc.HsqldbProfile$"
  db {
    driver = "org.hsqldb.jdbcDriver"
    url = "jdbc:hsqldb:file:{{.work_dir}}/persist/metadata;shutdown=false;hsqldb.tx=mvcc"
    connectionTimeout = 20000
  }
}

backend {
  providers {
    Local {
      config {
        runtime-attributes = """
        Int? cpu
        Int? memory_mb
        {{.docker_attrs}}
        {{.cwl_attrs}}
        """
        {{.submit_docker}}
        {{.filesystem}}
      }
    }
{{.hpc}}
  }
}
`

const slurmTemplate = `
    SLURM {
      actor-factory = "cromwell.backend.impl.sfs.config.ConfigBackendLifecycleActorFactory"
      config {
        runtime-attributes = """
        Int cpu = 1
        Int memory_mb = 2048
        String queue = "{{.queue}}"
        String timelimit = "{{.timelimit}}"
        String account = "{{.account}}"
        {{.docker_attrs}}
        {{.cwl_attrs}}
        """
        submit = """
            sbatch -J ${job_name} -D ${cwd} -o ${out} -e ${err} -t ${timelimit} -p ${queue} \
            ${"--cpus-per-task=" + cpu} --mem=${memory_mb} ${account} \
            --wrap "/usr/bin/env bash ${script}"
        """
        kill = "scancel ${job_id}"
        check-alive = "squeue -j ${job_id}"
        job-id-regex = "Submitted batch job (\\d+).*"
        {{.filesystem}}
      }
    }
`

const sgeTemplate = `
    SGE {
      actor-factory = "cromwell.backend.impl.sfs.config.ConfigBackendLifecycleActorFactory"
      config {
        runtime-attributes = """
        Int cpu = 1
        Int memory_mb = 2048
        String queue = "{{.queue}}"
        String pename = "{{.pename}}"
        String memtype = "{{.memtype}}"
        {{.docker_attrs}}
        {{.cwl_attrs}}
        """
        submit = """
        qsub -V -w w -j y -N ${job_name} -wd ${cwd} \
        -o ${out} -e ${err} -q ${queue} \
        -pe ${pename} ${cpu} ${"-l " + mem_type + "=" + memory_mb + "m"} \
        /usr/bin/env bash ${script}
        """
        kill = "qdel ${job_id}"
        check-alive = "qstat -j ${job_id}"
        job-id-regex = "(\\d+)"
        {{.filesystem}}
      }
    }
`

const pbsproTemplate = `
    PBSPRO {
      actor-factory = "cromwell.backend.impl.sfs.config.ConfigBackendLifecycleActorFactory"
      config {
        runtime-attributes = """
        Int cpu = 1
        Int memory_mb = 2048
        String queue = "{{.queue}}"
        String account = "{{.account}}"
        String walltime = "{{.walltime}}"
        {{.docker_attrs}}
        {{.cwl_attrs}}
        """
        submit = """
        qsub -V -l wd -N ${job_name} -o ${out} -e ${err} -q ${queue} -l walltime=${walltime} \
        {{.cpu_and_mem}} \
        -- /usr/bin/env bash ${script}
        """
        kill = "qdel ${job_id}"
        check-alive = "qstat -j ${job_id}"
        job-id-regex = "(\\d+)"
        {{.filesystem}}
      }
    }

`

const torqueTemplate = `
    TORQUE {
      actor-factory = "cromwell.backend.impl.sfs.config.ConfigBackendLifecycleActorFactory"
      config {
        runtime-attributes = """
        Int cpu = 1
        Int memory_mb = 2048
        String queue = "{{.queue}}"
        String account = "{{.account}}"
        String walltime = "{{.walltime}}"
        {{.docker_attrs}}
        {{.cwl_attrs}}
        """
        submit = """
        qsub -V -l wd -N ${job_name} -o ${out} -e ${err} -q ${queue} \
        -l nodes=1:ppn=${cpu} -l mem=${memory_mb}mb -l walltime=${walltime} \
        -- /usr/bin/env bash ${script}
        """
        kill = "qdel ${job_id}"
        check-alive = "qstat -j ${job_id}"
        job-id-regex = "(\\d+)"
        {{.filesystem}}
      }
    }
`
