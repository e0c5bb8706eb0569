package main

//go:generate swag init -g cmd/tradelog/main.go -o docs

// @title           Trade Log Analytics API
// @version         0.1.0
// @description     Summary stats, grouped views, and enriched records from a CSV trade log.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
