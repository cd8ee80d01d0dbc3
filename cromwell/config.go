package cromwell

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// ConfigFileName is the fixed name of the rendered configuration file within
// the work directory.
const ConfigFileName = "bcbio-cromwell.conf"

// Request describes a single Cromwell run to generate configuration for.
type Request struct {
	Scheduler   Scheduler
	Queue       string
	Resources   []string // raw key=value override tokens, each optionally ;-joined
	NoContainer bool
}

// RenderedConfig is the final configuration text and the path it was written to.
type RenderedConfig struct {
	Text string
	Path string
}

// ClArgs returns the java flags to pass to the Cromwell driver process for
// the request.
func ClArgs(req Request) []string {
	if req.Scheduler != Local {
		return []string{
			"-Dload-control.memory-threshold-in-mb=1",
			fmt.Sprintf("-Dbackend.default=%s", strings.ToUpper(string(req.Scheduler))),
		}
	}
	// Avoid overscheduling jobs for local runs by limiting concurrent jobs.
	// Longer term would like to keep these within a defined core window.
	return []string{
		"-Dbackend.providers.Local.config.concurrent-job-limit=1",
		"-Dload-control.memory-threshold-in-mb=1",
	}
}

// ConfigParams merges scheduler defaults, the queue, and resource overrides
// into the values used to fill the scheduler's backend template. Overrides
// apply in input order, so later entries win. Tokens that are neither
// key=value nor a recognized bare key are ignored.
func ConfigParams(req Request) (map[string]string, error) {
	params := make(map[string]string)
	if req.Scheduler == Local {
		return params, nil
	}
	sched, ok := schedulerTable[req.Scheduler]
	if !ok {
		return nil, UnsupportedSchedulerError{Name: string(req.Scheduler)}
	}
	if req.Queue == "" {
		return nil, MissingQueueError{Scheduler: req.Scheduler}
	}
	for key, val := range sched.defaults {
		params[key] = val
	}
	params["queue"] = req.Queue
	for _, rs := range req.Resources {
		for _, r := range strings.Split(rs, ";") {
			parts := strings.Split(r, "=")
			switch {
			case len(parts) == 2:
				params[parts[0]] = sched.prefixes[parts[0]] + parts[1]
			case len(parts) == 1:
				if sub, found := sched.custom[parts[0]]; found {
					params[sub.key] = sub.val
				}
			}
		}
	}
	return params, nil
}

// Render fills the backend template for the requested scheduler, embeds it in
// the top-level configuration, and writes the result to
// workDir/bcbio-cromwell.conf, overwriting any existing file.
func Render(req Request, workDir string) (RenderedConfig, error) {
	params, err := ConfigParams(req)
	if err != nil {
		return RenderedConfig{}, err
	}
	std := stdParams(req)
	for key, val := range std {
		params[key] = val
	}

	var hpc string
	if req.Scheduler != Local {
		hpc, err = fill(schedulerTable[req.Scheduler].template, params)
		if err != nil {
			return RenderedConfig{}, err
		}
	}

	top := map[string]string{
		"hpc":      hpc,
		"work_dir": workDir,
	}
	for key, val := range std {
		top[key] = val
	}
	text, err := fill(mainTemplate, top)
	if err != nil {
		return RenderedConfig{}, err
	}

	outFile := filepath.Join(workDir, ConfigFileName)
	out := fileio.EasyCreate(outFile)
	_, err = fmt.Fprint(out, text)
	exception.PanicOnErr(err)
	err = out.Close()
	exception.PanicOnErr(err)
	return RenderedConfig{Text: text, Path: outFile}, nil
}

// stdParams builds the substitution values shared by the top-level and
// backend templates. Local runs always need docker attributes set because of
// submit-docker in Cromwell's default configuration.
func stdParams(req Request) map[string]string {
	dockerAttrs := []string{"String? docker", "String? docker_user"}
	cwlAttrs := []string{"Int? cpuMin", "Int? cpuMax", "Int? memoryMin", "Int? memoryMax", "String? outDirMin",
		"String? outDirMax", "String? tmpDirMin", "String? tmpDirMax"}
	params := map[string]string{
		"docker_attrs":  strings.Join(dockerAttrs, "\n        "),
		"submit_docker": "",
		"cwl_attrs":     strings.Join(cwlAttrs, "\n        "),
		"filesystem":    filesystemConfig,
	}
	if req.NoContainer {
		params["docker_attrs"] = ""
		params["submit_docker"] = `submit-docker: ""`
	}
	return params
}
