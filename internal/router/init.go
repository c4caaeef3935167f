package router

import (
	"github.com/arkanlabs/newsletter-api/internal/application"
	"github.com/arkanlabs/newsletter-api/internal/container"
	"github.com/arkanlabs/newsletter-api/internal/domain/repository"
	pginfra "github.com/arkanlabs/newsletter-api/internal/infrastructure/postgres"
	handlers "github.com/arkanlabs/newsletter-api/internal/interface/http"
	"github.com/arkanlabs/newsletter-api/internal/router/modules"
)

type SubscriptionModuleDeps struct {
	Repo    repository.SubscriptionRepository
	Service *application.SubscriptionService
	Handler *handlers.SubscriptionHandler
}

func buildSubscriptionDeps() SubscriptionModuleDeps {
	repo := pginfra.NewSubscriptionRepository(container.GetPGPool(), container.GetTokenIssuer())

	service := application.NewSubscriptionService(
		repo,
		container.GetEmail(),
		container.GetConfig().BaseURL,
		container.GetLogger(),
	)

	handler := handlers.NewSubscriptionHandler(service, container.GetLogger())

	return SubscriptionModuleDeps{Repo: repo, Service: service, Handler: handler}
}

func buildNewsletterHandler(repo repository.SubscriptionRepository) *handlers.NewsletterHandler {
	service := application.NewNewsletterService(
		repo,
		container.GetRabbitPub(),
		container.GetLogger(),
	)
	return handlers.NewNewsletterHandler(service, container.GetLogger(), container.GetConfig())
}

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	subDeps := buildSubscriptionDeps()
	r.Add(modules.NewSubscriptionModule(subDeps.Handler))
	r.Add(modules.NewNewsletterModule(buildNewsletterHandler(subDeps.Repo)))
	r.Add(modules.NewHealthModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
