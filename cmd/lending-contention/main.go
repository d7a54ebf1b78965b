// Command lending-contention fires concurrent borrow requests for one book against a running
// library desk service and reports how many succeeded. Exactly one winner is expected.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"golang.org/x/sync/errgroup"

	"github.com/AntonStoeckl/library-desk-go/desk"
	v1 "github.com/AntonStoeckl/library-desk-go/service/api/v1"
	"github.com/AntonStoeckl/library-desk-go/service/shared/logger"
)

type Options struct {
	logger.Options

	URL         string        `doc:"base URL of the service"          default:"http://localhost:8888"`
	Prefix      string        `doc:"endpoints prefix of the service"  default:"/api"`
	Contenders  int           `doc:"number of concurrent borrowers"   default:"50" short:"n"`
	Rounds      int           `doc:"number of books to fight over"    default:"1"`
	Timeout     time.Duration `doc:"timeout of a single request"      default:"10s"`
	PhonePrefix string        `doc:"first 4 digits of generated phones" default:"7999"`
}

type outcome struct {
	won, unavailable, failed atomic.Int32
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		hooks.OnStart(func() {
			log := logger.New(&options.Options)
			client := desk.NewClient(options.URL,
				desk.WithEndpointsPrefix(options.Prefix),
				desk.WithTimeout(options.Timeout),
				desk.WithLogger(log),
			)

			ctx := context.Background()
			phones, err := registerContenders(ctx, client, options)
			if err != nil {
				log.Error("registering readers failed", "err", err)
				os.Exit(1)
			}

			exitCode := 0
			for round := range options.Rounds {
				result, err := contend(ctx, client, phones, round)
				if err != nil {
					log.Error("round failed", "round", round, "err", err)
					os.Exit(1)
				}

				log.Info("round finished",
					"round", round,
					"won", result.won.Load(),
					"unavailable", result.unavailable.Load(),
					"failed", result.failed.Load(),
				)
				if result.won.Load() != 1 {
					exitCode = 1
				}
			}

			os.Exit(exitCode)
		})
	})
	cli.Run()
}

// registerContenders registers one reader per contender. Readers left over from earlier runs are reused.
func registerContenders(ctx context.Context, client *desk.Client, options *Options) ([]string, error) {
	phones := make([]string, options.Contenders)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(16) //nolint: mnd
	for i := range phones {
		phones[i] = fmt.Sprintf("%s%07d", options.PhonePrefix, i)
		g.Go(func() error {
			err := client.RegisterReader(gctx, v1.RegisterReaderRequest{
				Phone:     phones[i],
				FirstName: "Contender",
				LastName:  fmt.Sprintf("No. %d", i),
				DOB:       "2000-01-01",
			})

			var apiErr *desk.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == 409 { //nolint: mnd
				return nil
			}
			return err
		})
	}

	return phones, g.Wait()
}

// contend adds a fresh book, lets every contender borrow it at once and checks the final state.
func contend(ctx context.Context, client *desk.Client, phones []string, round int) (*outcome, error) {
	bookID, err := client.AddBook(ctx, v1.AddBookRequest{
		Title:  fmt.Sprintf("Contended Copy %d-%d", time.Now().Unix(), round),
		Author: "Lending Contention",
	})
	if err != nil {
		return nil, err
	}

	result := &outcome{}
	start := make(chan struct{})

	var g errgroup.Group
	for _, phone := range phones {
		g.Go(func() error {
			<-start
			err := client.Borrow(ctx, bookID, phone)

			var apiErr *desk.APIError
			switch {
			case err == nil:
				result.won.Add(1)
			case errors.As(err, &apiErr) && apiErr.StatusCode == 400: //nolint: mnd
				result.unavailable.Add(1)
			default:
				result.failed.Add(1)
			}
			return nil
		})
	}
	close(start)
	_ = g.Wait()

	books, err := client.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	for _, book := range books {
		if book.ID == bookID && book.Status != "BORROWED" {
			return nil, fmt.Errorf("book %d ended as %s", bookID, book.Status)
		}
	}

	return result, client.DeleteBook(ctx, bookID)
}
