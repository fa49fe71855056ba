package schedule

import (
	"context"

	"github.com/google/uuid"
)

// RuleRepository is the read-only port over the three schedule rule sources.
type RuleRepository interface {
	HasHoliday(ctx context.Context, barberID uuid.UUID, date string) (bool, error)
	ListExceptions(ctx context.Context, barberID uuid.UUID, date string) ([]Interval, error)
	ListWeeklyRules(ctx context.Context, barberID uuid.UUID, weekday string) ([]Interval, error)
}

// Resolver computes the effective working intervals for a barber on a date by
// walking an ordered chain of rule sources, short-circuiting at the first
// definitive one: holiday, then date exception, then weekly base rule.
type Resolver struct {
	rules RuleRepository
}

func NewResolver(rules RuleRepository) *Resolver {
	return &Resolver{rules: rules}
}

type ruleStep func(ctx context.Context, barberID uuid.UUID, date string) ([]Interval, bool, error)

func (r *Resolver) WorkingIntervals(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) ([]Interval, error) {

	steps := []ruleStep{
		r.holidayStep,
		r.exceptionStep,
		r.weeklyStep,
	}

	for _, step := range steps {
		intervals, definitive, err := step(ctx, barberID, date)
		if err != nil {
			return nil, err
		}
		if definitive {
			return intervals, nil
		}
	}

	return []Interval{}, nil
}

// holidayStep: a marker closes the whole day.
func (r *Resolver) holidayStep(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) ([]Interval, bool, error) {

	onHoliday, err := r.rules.HasHoliday(ctx, barberID, date)
	if err != nil {
		return nil, false, err
	}
	if onHoliday {
		return []Interval{}, true, nil
	}
	return nil, false, nil
}

// exceptionStep: exception rows replace the weekly schedule entirely, they are
// never merged with it.
func (r *Resolver) exceptionStep(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) ([]Interval, bool, error) {

	exceptions, err := r.rules.ListExceptions(ctx, barberID, date)
	if err != nil {
		return nil, false, err
	}
	if len(exceptions) > 0 {
		return exceptions, true, nil
	}
	return nil, false, nil
}

// weeklyStep: the base rule, always definitive. Overlapping rows for the same
// weekday are kept as separate intervals.
func (r *Resolver) weeklyStep(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) ([]Interval, bool, error) {

	rules, err := r.rules.ListWeeklyRules(ctx, barberID, Weekday(date))
	if err != nil {
		return nil, false, err
	}
	return rules, true, nil
}
