package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"tableflip.dev/groupdo/pkg/todo"
)

// DocumentVersion is the only document version this build reads and writes.
const DocumentVersion = 1

var (
	// ErrUnsupportedVersion is returned for documents newer than this build.
	ErrUnsupportedVersion = errors.New("store: unsupported document version")
	// ErrSchema is returned for documents that do not match the schema.
	ErrSchema = errors.New("store: document does not match schema")
)

const schemaURL = "https://tableflip.dev/groupdo/document.schema.json"

//go:embed schema/document.json
var documentSchemaJSON string

var documentSchema = jsonschema.MustCompileString(schemaURL, documentSchemaJSON)

type document struct {
	Version int         `json:"version"`
	Groups  []groupJSON `json:"groups"`
}

type groupJSON struct {
	Name  string     `json:"name"`
	Tasks []taskJSON `json:"tasks"`
}

type taskJSON struct {
	Name      string        `json:"name"`
	Urgency   int           `json:"urgency"`
	Completed bool          `json:"completed"`
	Expanded  bool          `json:"expanded"`
	SubTasks  []subTaskJSON `json:"subtasks"`
}

type subTaskJSON struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// legacyDocument is the unversioned layout: groups of tasks with taskName and
// urgency only.
type legacyDocument struct {
	Groups []struct {
		Name  string `json:"name"`
		Tasks []struct {
			TaskName string `json:"taskName"`
			Urgency  int    `json:"urgency"`
		} `json:"tasks"`
	} `json:"groups"`
}

// Encode renders l as a version 1 document.
func Encode(l *todo.List) ([]byte, error) {
	doc := document{Version: DocumentVersion, Groups: make([]groupJSON, 0)}
	if l != nil {
		for _, g := range l.Groups {
			gj := groupJSON{Name: g.Name, Tasks: make([]taskJSON, 0, len(g.Tasks))}
			for _, t := range g.Tasks {
				tj := taskJSON{
					Name:      t.Name,
					Urgency:   int(t.Urgency),
					Completed: t.Completed,
					Expanded:  t.Expanded,
					SubTasks:  make([]subTaskJSON, 0, len(t.SubTasks)),
				}
				for _, s := range t.SubTasks {
					tj.SubTasks = append(tj.SubTasks, subTaskJSON{Name: s.Name, Completed: s.Completed})
				}
				gj.Tasks = append(gj.Tasks, tj)
			}
			doc.Groups = append(doc.Groups, gj)
		}
	}
	return json.Marshal(doc)
}

// Decode parses a stored document. Unversioned documents in the legacy
// layout are upgraded. Anything else that is not a valid version 1 document
// is an error.
func Decode(data []byte) (*todo.List, error) {
	var probe struct {
		Version *int `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("store: parse document: %w", err)
	}

	if probe.Version == nil {
		upgraded, err := upgradeLegacy(data)
		if err != nil {
			return nil, err
		}
		data = upgraded
	} else if *probe.Version != DocumentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, *probe.Version)
	}

	if err := validate(data); err != nil {
		return nil, err
	}

	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("store: parse document: %w", err)
	}
	return doc.list(), nil
}

func validate(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("store: parse document: %w", err)
	}
	if err := documentSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}

func upgradeLegacy(data []byte) ([]byte, error) {
	var legacy legacyDocument
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("store: parse legacy document: %w", err)
	}
	doc := document{Version: DocumentVersion, Groups: make([]groupJSON, 0, len(legacy.Groups))}
	for _, g := range legacy.Groups {
		gj := groupJSON{Name: g.Name, Tasks: make([]taskJSON, 0, len(g.Tasks))}
		for _, t := range g.Tasks {
			gj.Tasks = append(gj.Tasks, taskJSON{Name: t.TaskName, Urgency: t.Urgency, SubTasks: []subTaskJSON{}})
		}
		doc.Groups = append(doc.Groups, gj)
	}
	return json.Marshal(doc)
}

func (d document) list() *todo.List {
	l := todo.New()
	for _, g := range d.Groups {
		grp := todo.Group{Name: g.Name, Tasks: make([]todo.Task, 0, len(g.Tasks))}
		for _, t := range g.Tasks {
			task := todo.Task{
				Name:      t.Name,
				Urgency:   todo.Urgency(t.Urgency),
				Completed: t.Completed,
				Expanded:  t.Expanded,
				SubTasks:  make([]todo.SubTask, 0, len(t.SubTasks)),
			}
			for _, s := range t.SubTasks {
				task.SubTasks = append(task.SubTasks, todo.SubTask{Name: s.Name, Completed: s.Completed})
			}
			grp.Tasks = append(grp.Tasks, task)
		}
		l.Groups = append(l.Groups, grp)
	}
	return l
}
