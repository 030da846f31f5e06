package main

import (
	"fmt"
	"os"

	"github.com/airbusgeo/godal"
	"github.com/joho/godotenv"
	"github.com/vermeulendivan/s2prep/util"
)

func main() {
	if err := godotenv.Load(); err == nil {
		util.LogInfo(&(util.BasicLogContext{}), "Loaded configuration from .env")
	}
	godal.RegisterAll()

	util.LogAudit(&(util.BasicLogContext{}), util.LogAuditInput{Actor: "main()", Action: "startup", Actee: "self", Message: "Application Startup", Severity: util.INFO})
	err := createCliApp().Run(os.Args)
	if err != nil {
		util.LogAlert(&(util.BasicLogContext{}), fmt.Sprintf("Error executing CLI app: %v", err))
	}
}
