package crew

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	crewerrors "github.com/betteros/goal-crew/internal/errors"
	"github.com/betteros/goal-crew/internal/llm"
)

// Definition files, looked up in the embedded defaults and in the
// override directory
const (
	AgentsFile = "agents.yaml"
	TasksFile  = "tasks.yaml"
	CrewFile   = "crew.yaml"
)

// ProcessSequential runs tasks one after another, each seeing the
// outputs of the tasks before it
const ProcessSequential = "sequential"

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Definitions holds every agent, task and per-command pipeline
type Definitions struct {
	Process   string
	Agents    map[string]Agent
	Tasks     map[string]Task
	Pipelines map[string][]string
}

type crewFile struct {
	Process   string              `yaml:"process"`
	Pipelines map[string][]string `yaml:"pipelines"`
}

// LoadDefinitions loads the embedded defaults, then overlays the
// definition files found in dir. Entries in an override file replace the
// default entry of the same name. An empty or missing dir keeps the
// defaults.
func LoadDefinitions(dir string) (*Definitions, error) {
	defs := &Definitions{
		Process:   ProcessSequential,
		Agents:    make(map[string]Agent),
		Tasks:     make(map[string]Task),
		Pipelines: make(map[string][]string),
	}

	for _, name := range []string{AgentsFile, TasksFile, CrewFile} {
		data, err := defaultsFS.ReadFile("defaults/" + name)
		if err != nil {
			return nil, crewerrors.ErrCrewDefinition(err)
		}
		if err := defs.merge(name, data); err != nil {
			return nil, crewerrors.ErrCrewDefinition(fmt.Errorf("default %s: %w", name, err))
		}
	}

	if dir != "" {
		for _, name := range []string{AgentsFile, TasksFile, CrewFile} {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				continue
			}
			if err != nil {
				return nil, crewerrors.ErrCrewDefinition(err)
			}
			if err := defs.merge(name, data); err != nil {
				return nil, crewerrors.ErrCrewDefinition(fmt.Errorf("%s: %w", path, err))
			}
		}
	}

	if err := defs.Validate(); err != nil {
		return nil, crewerrors.ErrCrewDefinition(err)
	}
	return defs, nil
}

func (d *Definitions) merge(file string, data []byte) error {
	switch file {
	case AgentsFile:
		var agents map[string]Agent
		if err := yaml.Unmarshal(data, &agents); err != nil {
			return err
		}
		for name, a := range agents {
			a.Name = name
			d.Agents[name] = a
		}
	case TasksFile:
		var tasks map[string]Task
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			return err
		}
		for name, t := range tasks {
			t.Name = name
			d.Tasks[name] = t
		}
	case CrewFile:
		var cf crewFile
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return err
		}
		if cf.Process != "" {
			d.Process = cf.Process
		}
		for command, tasks := range cf.Pipelines {
			d.Pipelines[command] = tasks
		}
	}
	return nil
}

// Validate checks every reference between pipelines, tasks and agents and
// reports all problems at once
func (d *Definitions) Validate() error {
	var result *multierror.Error

	if d.Process != ProcessSequential {
		result = multierror.Append(result, fmt.Errorf("unsupported process %q", d.Process))
	}

	for _, name := range sortedKeys(d.Agents) {
		a := d.Agents[name]
		if a.Role == "" {
			result = multierror.Append(result, fmt.Errorf("agent %s: role is required", name))
		}
		if a.Goal == "" {
			result = multierror.Append(result, fmt.Errorf("agent %s: goal is required", name))
		}
	}

	for _, name := range sortedKeys(d.Tasks) {
		t := d.Tasks[name]
		if t.Description == "" {
			result = multierror.Append(result, fmt.Errorf("task %s: description is required", name))
		}
		if t.Agent == "" {
			result = multierror.Append(result, fmt.Errorf("task %s: agent is required", name))
		} else if _, ok := d.Agents[t.Agent]; !ok {
			result = multierror.Append(result, fmt.Errorf("task %s: unknown agent %s", name, t.Agent))
		}
	}

	for _, command := range sortedKeys(d.Pipelines) {
		tasks := d.Pipelines[command]
		if len(tasks) == 0 {
			result = multierror.Append(result, fmt.Errorf("pipeline %s: no tasks", command))
		}
		for _, task := range tasks {
			if _, ok := d.Tasks[task]; !ok {
				result = multierror.Append(result, fmt.Errorf("pipeline %s: unknown task %s", command, task))
			}
		}
	}

	return result.ErrorOrNil()
}

// Commands returns the commands that have a pipeline, sorted
func (d *Definitions) Commands() []string {
	return sortedKeys(d.Pipelines)
}

// Crew assembles the pipeline of command around model
func (d *Definitions) Crew(command string, model llm.Model) (*Crew, error) {
	names, ok := d.Pipelines[command]
	if !ok {
		return nil, crewerrors.ErrUnknownPipeline(command)
	}

	c := &Crew{
		Command: command,
		Process: d.Process,
		Agents:  make(map[string]Agent),
		model:   model,
	}
	for _, name := range names {
		t, ok := d.Tasks[name]
		if !ok {
			return nil, crewerrors.ErrCrewDefinition(fmt.Errorf("pipeline %s: unknown task %s", command, name))
		}
		a, ok := d.Agents[t.Agent]
		if !ok {
			return nil, crewerrors.ErrCrewDefinition(fmt.Errorf("task %s: unknown agent %s", name, t.Agent))
		}
		c.Tasks = append(c.Tasks, t)
		c.Agents[a.Name] = a
	}
	return c, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
