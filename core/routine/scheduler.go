package routine

import "errors"

// ErrNothingToSchedule is returned when there is no registered course to examine.
var ErrNothingToSchedule = errors.New("no registered courses to schedule")

// GenerateExamSchedule assigns every course of `regs` to an exam day so that
// no student sits two exams on the same day.
//
// The number of days is minimised greedily (most conflicting courses first),
// not globally. The result only depends on `regs` and its order.
func GenerateExamSchedule(regs []CourseRegistration) (Schedule, error) {
	sch, _, err := generate(regs)
	return sch, err
}

// generate also returns the conflict graph the schedule was colored from.
func generate(regs []CourseRegistration) (Schedule, *ConflictGraph, error) {
	if len(regs) == 0 {
		return Schedule{}, nil, ErrNothingToSchedule
	}
	g := BuildConflictGraph(regs)
	return GreedyColor(g).Schedule(g), g, nil
}
