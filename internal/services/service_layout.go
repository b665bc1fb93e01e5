package services

import (
	"context"
	"time"

	"dj-site/dto"
	"dj-site/internal/screenstack"
	"dj-site/internal/validate"
)

// LayoutService builds the screen stack for the current content.
type LayoutService struct {
	events   *EventService
	settings *SettingsService
	debounce time.Duration
	duration time.Duration
	now      func() time.Time
}

func NewLayoutService(events *EventService, settings *SettingsService) *LayoutService {
	return &LayoutService{
		events:   events,
		settings: settings,
		debounce: screenstack.DefaultDebounce,
		duration: screenstack.DefaultTransition,
		now:      time.Now,
	}
}

func (s *LayoutService) Layout(ctx context.Context, q dto.LayoutQuery) (dto.LayoutResponse, error) {
	if err := validate.Struct(ctx, q); err != nil {
		return dto.LayoutResponse{}, fromValidate(err)
	}
	events, err := s.events.List(ctx)
	if err != nil {
		return dto.LayoutResponse{}, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return dto.LayoutResponse{}, err
	}

	plan := screenstack.Build(events, settings)
	stack := screenstack.NewStack(plan, q.ViewportHeight, screenstack.NewMotion(s.debounce, s.duration))
	return dto.LayoutResponse{
		Sections: plan.Sections,
		Frame:    stack.Frame(q.ScrollY, s.now()),
		Timing: dto.LayoutTiming{
			DebounceMs: s.debounce.Milliseconds(),
			Scrolling:  screenstack.Transition{DurationMs: 0},
			Idle:       screenstack.Transition{DurationMs: s.duration.Milliseconds(), Easing: "ease-out"},
		},
	}, nil
}
