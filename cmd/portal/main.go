package main

import (
	"portal/internal/api"

	"github.com/sirupsen/logrus"
)

// @title Hotspot Portal API
// @version 1.0
// @description Package catalog and M-Pesa STK push purchases for a hotspot captive portal.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logrus.Info("App start")
	api.StartServer()
	logrus.Info("App terminated")
}
