package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"

	"github.com/Turf-FC/website/controller"
	"github.com/Turf-FC/website/trackerapi"
	"github.com/Turf-FC/website/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	apiURL := os.Getenv("TRACKER_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:5000/api"
	}

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	clock := clock.New()
	api := newTrackerClient(apiURL)

	ctrl, err := controller.New(clock, api)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that re-checks connectivity to the tracker API so the pages
	// can show the current state.
	wg.Add(1)
	go ctrl.RunPeriodicConnectionChecks(30*time.Second, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

// newTrackerClient probes the tracker API and falls back to the bundled
// read-only sample data when it is unreachable, so the viewer pages keep
// working during local development.
func newTrackerClient(apiURL string) trackerapi.Client {
	api := trackerapi.New(apiURL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := api.Competitions(ctx); err != nil {
		log.Printf("tracker API unreachable at %s, using bundled sample data: %v", apiURL, err)
		fallback, err := trackerapi.NewFallback()
		if err != nil {
			log.Fatalf("error loading bundled sample data: %v", err)
		}
		return fallback
	}
	return api
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
