package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/crewcall-dev/crew-manager/backend/internal/config"
	"github.com/crewcall-dev/crew-manager/backend/internal/inflight"
	"github.com/crewcall-dev/crew-manager/backend/internal/repository"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	translator    ut.Translator
	notifyChannel *amqp.Channel
	locks         *inflight.Locker

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, notifyCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		translator:    trans,
		notifyChannel: notifyCh,
		locks:         inflight.NewLocker(rdb, time.Duration(cfg.Redis.InflightTTL)*time.Second),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/roles", func(r chi.Router) {
		r.Get("/", h.GetAllRoles)
		r.Post("/", h.CreateRole)
	})

	h.Mux.Route("/workers", func(r chi.Router) {
		r.Get("/", h.GetAllWorkers)
		r.Post("/", h.CreateWorker)
	})

	h.Mux.Route("/shifts", func(r chi.Router) {
		r.Post("/", h.CreateShift)
		r.Get("/", h.GetAllShifts)
		r.Route("/{shiftID}", func(r chi.Router) {
			r.Use(h.shiftCtx)
			r.Get("/", h.GetShift)
			r.Patch("/requirements", h.UpdateRequirements)
			r.Post("/workers", h.AssignWorker)
			r.Post("/end-all", h.EndAllShifts)
			r.Post("/finalize", h.FinalizeTimesheet)
			r.Get("/timesheet", h.GetTimesheet)
			r.Route("/assignments/{assignmentID}", func(r chi.Router) {
				r.Use(h.assignmentCtx)
				r.Post("/clock", h.Clock)
				r.Post("/end", h.EndShift)
				r.Post("/no-show", h.MarkNoShow)
				r.Post("/drop", h.DropShift)
				r.Delete("/", h.UnassignWorker)
			})
		})
	})
}
