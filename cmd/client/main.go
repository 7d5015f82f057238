package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mlezhnev/habitsync/internal/adapter"
	"github.com/mlezhnev/habitsync/internal/client"
	"github.com/mlezhnev/habitsync/internal/config"
	"github.com/mlezhnev/habitsync/internal/logger"
	"github.com/mlezhnev/habitsync/internal/service"
	"github.com/mlezhnev/habitsync/internal/store"
	"github.com/mlezhnev/habitsync/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("habitsync-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	deviceID, err := storages.Local.DeviceID(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("resolve device id")
	}

	cloud, err := adapter.NewHTTPCloudAdapter(cfg.Adapter, deviceID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create cloud adapter")
	}

	var userID string
	if cfg.App.AuthToken != "" {
		cloud.SetToken(cfg.App.AuthToken)
		if userID, err = utils.ExtractUserID(cfg.App.AuthToken); err != nil {
			log.Warn().Err(err).Msg("auth token rejected, starting signed out")
			userID = ""
		}
	}

	notifier := &logNotifier{log: log}
	services := service.NewClientServices(storages, cloud, notifier, userID, cfg.Workers.DebounceWindow, log)

	app, err := client.NewApp(services, storages, cfg.Workers, confirmRestore, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// logNotifier surfaces sync toasts on stdout and in the log file.
type logNotifier struct {
	log *logger.Logger
}

func (n *logNotifier) Success(msg string) {
	fmt.Println(msg)
	n.log.Info().Msg(msg)
}

func (n *logNotifier) Failure(msg string) {
	fmt.Println(msg)
	n.log.Warn().Msg(msg)
}

var _ service.Notifier = (*logNotifier)(nil)

// confirmRestore asks on stdin whether cloud data should replace the empty
// local store.
func confirmRestore() bool {
	fmt.Print("Cloud backup found for your account. Restore it to this device? [y/N]: ")

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
