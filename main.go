package main

import (
	"log"

	"microfin-server/confs"
	"microfin-server/db"
	"microfin-server/server"
)

func main() {
	// load config
	err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	serverDb := server.NewServer(database)
	serverDb.Start()
}
