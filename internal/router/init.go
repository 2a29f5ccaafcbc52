package router

import (
	"github.com/resumehub/resume-ai/internal/application"
	"github.com/resumehub/resume-ai/internal/container"
	pginfra "github.com/resumehub/resume-ai/internal/infrastructure/postgres"
	handlers "github.com/resumehub/resume-ai/internal/interface/http"
	"github.com/resumehub/resume-ai/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers it with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	repo := pginfra.NewAccountRepository(container.GetPGPool())
	authSvc := application.NewAuthService(repo, container.GetJWT(), container.GetOTPSender(), logger)
	chatSvc := application.NewChatService(genOrNil(), logger)
	resumeSvc := application.NewResumeService(container.GetGCS(), cfg.GCSBucket, container.GetES(), cfg.ESResumesIndex, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewChatModule(handlers.NewChatHandler(chatSvc, logger), container.GetJWT()))
	r.Add(modules.NewResumeModule(handlers.NewResumeHandler(resumeSvc, cfg.MaxResumeBytes, logger), container.GetJWT()))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(container.GetPGPool())))
}

// genOrNil keeps ChatService.Gen a nil interface when no client is
// configured, so the service can detect the unconfigured case.
func genOrNil() application.Generator {
	if c := container.GetGenAI(); c != nil {
		return c
	}
	return nil
}
