package service

import (
	"workshop-planner/internal/models"
)

// DependencyGraph resolves "limit phase" gating: which standard-task templates
// must be finished before another template's tasks may start, scoped per
// project through the concrete task rows.
type DependencyGraph struct {
	prerequisites  map[uint][]uint          // standard task id -> limiting standard task ids
	tasksByProject map[uint][]*models.Task
}

func NewDependencyGraph(deps []models.TaskDependency, tasks []models.Task) *DependencyGraph {
	g := &DependencyGraph{
		prerequisites:  map[uint][]uint{},
		tasksByProject: map[uint][]*models.Task{},
	}
	for _, d := range deps {
		g.prerequisites[d.StandardTaskID] = append(g.prerequisites[d.StandardTaskID], d.LimitStandardTaskID)
	}
	for i := range tasks {
		t := &tasks[i]
		if pid := t.ProjectID(); pid != 0 {
			g.tasksByProject[pid] = append(g.tasksByProject[pid], t)
		}
	}
	return g
}

// IsUnlocked reports whether every concrete task in the same project whose
// template limits this task's template is completed. Tasks in completedSoFar
// count as completed even when their persisted status says otherwise; the
// weekly planner uses that set for simulated completion within one run.
func (g *DependencyGraph) IsUnlocked(task *models.Task, completedSoFar map[uint]bool) bool {
	if task.StandardTaskID == nil {
		return true
	}
	limits := g.prerequisites[*task.StandardTaskID]
	if len(limits) == 0 {
		return true
	}

	limitSet := map[uint]bool{}
	for _, id := range limits {
		limitSet[id] = true
	}

	for _, other := range g.tasksByProject[task.ProjectID()] {
		if other.ID == task.ID || other.StandardTaskID == nil {
			continue
		}
		if !limitSet[*other.StandardTaskID] {
			continue
		}
		if !other.IsCompleted() && !completedSoFar[other.ID] {
			return false
		}
	}
	return true
}

// Schedulable applies the status rules: todo and in-progress tasks are always
// eligible, hold tasks only once unlocked, completed tasks never.
func (g *DependencyGraph) Schedulable(task *models.Task, completedSoFar map[uint]bool) bool {
	switch task.Status {
	case models.TaskStatusTodo, models.TaskStatusInProgress:
		return true
	case models.TaskStatusHold:
		return g.IsUnlocked(task, completedSoFar)
	}
	return false
}
