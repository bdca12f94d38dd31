package main

import (
	"context"
	"log/slog"

	"paraquip/config"
	"paraquip/internal/domain/repository"
	"paraquip/internal/errors"
	logs "paraquip/internal/infra/log"
	"paraquip/internal/infra/notification"
	"paraquip/internal/infra/persistence/file"
	"paraquip/internal/pkg/i18n"
	"paraquip/internal/usecase"
	"paraquip/internal/usecase/impl"

	"go.uber.org/fx"
)

type engineParams struct {
	fx.In

	Lc       fx.Lifecycle
	Logger   *slog.Logger
	Profiles usecase.ProfileUsecase
	Engine   usecase.NotificationUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			startEngine,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		i18n.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			file.NewProfileRepository,
			file.NewNotificationStateRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.New,
			notification.NewScheduler,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			newEquipmentSource,
			impl.NewNotificationService,
		),
	)
}

// newEquipmentSource exposes the profile store as the engine's read path.
func newEquipmentSource(profiles usecase.ProfileUsecase) (repository.EquipmentSource, error) {
	source, ok := profiles.(repository.EquipmentSource)
	if !ok {
		return nil, errors.New("profile usecase does not implement the equipment source")
	}

	return source, nil
}

func startEngine(params engineParams) {
	// Profile mutations wake the engine through its debounced entry point.
	params.Profiles.OnChange(params.Engine.Reschedule)

	if err := params.Engine.ReconcileNow(context.Background()); err != nil {
		params.Logger.Error("Initial reconciliation failed", slog.Any("error", err))
	}

	go func() {
		for event := range params.Engine.Navigation() {
			switch {
			case event.Settings:
				params.Logger.Info("Navigate to notification settings")
			case event.Equipment != nil:
				params.Logger.Info("Navigate to equipment",
					slog.String("equipmentId", event.Equipment.ID.String()),
					slog.String("name", event.Equipment.Name))
			}
		}
	}()

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return params.Engine.Close()
		},
	})
}
