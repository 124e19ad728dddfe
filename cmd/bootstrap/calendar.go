package bootstrap

import (
	"context"
	"log/slog"

	"slotbook/internal/infra/calendar"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		fx.Annotate(
			NewCalendarClient,
			fx.As(new(commands.CalendarService)),
		),
	),
)

func NewCalendarClient(cfg config.Config) (*calendar.Client, error) {
	client, err := calendar.NewClient(context.Background(), cfg.Calendar)
	if err != nil {
		return nil, err
	}
	if !client.Enabled() {
		slog.Warn("calendar sync is disabled; set GOOGLE_SERVICE_ACCOUNT_EMAIL, GOOGLE_PRIVATE_KEY and GOOGLE_CALENDAR_ID to enable it")
	}
	return client, nil
}
