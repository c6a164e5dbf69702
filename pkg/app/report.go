package app

import (
	"tableflip.dev/groupdo/pkg/todo"
)

// ReportSection summarizes one group.
type ReportSection struct {
	Group     string
	Index     int
	Tasks     int
	Completed int
	// Open counts incomplete tasks per urgency level.
	Open [todo.UrgencyLevels]int
	// SubTasks and SubTasksDone count subtasks across the group.
	SubTasks     int
	SubTasksDone int
}

// ReportResult is a completion summary of the whole list.
type ReportResult struct {
	Sections  []ReportSection
	Total     int
	Completed int
}

// Report counts tasks and subtasks per group, in list order.
func (s *Service) Report() ReportResult {
	return BuildReport(s.List())
}

// BuildReport summarizes l.
func BuildReport(l *todo.List) ReportResult {
	var res ReportResult
	if l == nil {
		return res
	}
	res.Sections = make([]ReportSection, 0, len(l.Groups))
	for i, g := range l.Groups {
		sec := ReportSection{Group: g.Name, Index: i, Tasks: len(g.Tasks)}
		for _, t := range g.Tasks {
			if t.Completed {
				sec.Completed++
			} else if t.Urgency.Valid() {
				sec.Open[t.Urgency]++
			}
			sec.SubTasks += len(t.SubTasks)
			for _, st := range t.SubTasks {
				if st.Completed {
					sec.SubTasksDone++
				}
			}
		}
		res.Total += sec.Tasks
		res.Completed += sec.Completed
		res.Sections = append(res.Sections, sec)
	}
	return res
}
