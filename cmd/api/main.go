package main

import (
	"context"
	"findash/cmd"
	"findash/internal/logger"
	"log"
	"os"
)

func main() {
	logger.Info("starting findash %s", os.Getenv("commit_hash"))
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}

	if err := deps.Scheduler.Schedule(deps.Config.RefreshSchedule); err != nil {
		log.Fatal(err)
	}
	go deps.Scheduler.RunNow(context.Background())
	deps.Scheduler.Start()
	defer deps.Scheduler.Stop()

	err = deps.ApiHandler.StartApi(deps.Config.Port)
	if err != nil {
		log.Fatal(err)
	}
}
