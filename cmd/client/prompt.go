package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/skycastapp/locsync/internal/logger"
	"github.com/skycastapp/locsync/internal/service"
	"github.com/skycastapp/locsync/internal/store"
	"github.com/skycastapp/locsync/internal/utils"
	"github.com/skycastapp/locsync/models"
)

const promptHelp = `commands:
  list                        show saved locations
  add <name> <lat> <lon>      save a new location
  del <id>                    delete a location
  help                        show this message
  quit                        exit`

// runPrompt reads commands from stdin until EOF, "quit" or context
// cancellation. It is a minimal local shell around the operations facade.
func runPrompt(ctx context.Context, ops service.Operations, locations store.LocationRepository, log *logger.Logger) {
	fmt.Println(promptHelp)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	uuid := utils.NewUUIDGenerator()

	for {
		fmt.Print("> ")

		select {
		case <-ctx.Done():
			fmt.Println()
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if done := handleCommand(ctx, line, ops, locations, uuid, log); done {
				return
			}
		}
	}
}

func handleCommand(
	ctx context.Context,
	line string,
	ops service.Operations,
	locations store.LocationRepository,
	uuid *utils.UUIDGenerator,
	log *logger.Logger,
) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true

	case "help":
		fmt.Println(promptHelp)

	case "list":
		items, err := locations.GetAll(ctx)
		if err != nil {
			log.Err(err).Msg("failed to list saved locations")
			return false
		}
		if len(items) == 0 {
			fmt.Println("no saved locations")
			return false
		}
		for _, item := range items {
			fmt.Printf("%s  %-20s %9.4f %9.4f\n", item.ID, item.Name, item.Latitude, item.Longitude)
		}

	case "add":
		if len(fields) != 4 {
			fmt.Println("usage: add <name> <lat> <lon>")
			return false
		}
		lat, latErr := strconv.ParseFloat(fields[2], 64)
		lon, lonErr := strconv.ParseFloat(fields[3], 64)
		if latErr != nil || lonErr != nil {
			fmt.Println("latitude and longitude must be numbers")
			return false
		}

		items, err := locations.GetAll(ctx)
		if err != nil {
			log.Err(err).Msg("failed to load saved locations")
			return false
		}

		location := models.SavedLocation{
			ID:           uuid.Generate(),
			Name:         fields[1],
			Latitude:     lat,
			Longitude:    lon,
			Position:     len(items),
			LastModified: time.Now().UTC(),
		}
		if err := ops.RequestSave(ctx, location); err != nil {
			log.Err(err).Msg("failed to save location")
			return false
		}
		fmt.Printf("saved %s\n", location.ID)

	case "del":
		if len(fields) != 2 {
			fmt.Println("usage: del <id>")
			return false
		}
		if err := ops.RequestDelete(ctx, fields[1]); err != nil {
			log.Err(err).Msg("failed to delete location")
			return false
		}
		fmt.Println("deleted")

	default:
		fmt.Printf("unknown command %q, try help\n", fields[0])
	}

	return false
}
