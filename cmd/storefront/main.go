// Demo wiring of the storefront client: restores the session, warms up the
// catalog and service list concurrently, and prints a cart summary.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/pawmart/storefront-go/internal/cart"
	"github.com/pawmart/storefront-go/internal/domain"
	"github.com/pawmart/storefront-go/internal/gateway"
	"github.com/pawmart/storefront-go/internal/labels"
	"github.com/pawmart/storefront-go/internal/session"
	"github.com/pawmart/storefront-go/internal/storage"
	"github.com/pawmart/storefront-go/pkg/config"
	"github.com/pawmart/storefront-go/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.Env, Level: cfg.LogLevel})

	gw := gateway.New(cfg.APIBaseURL, cfg.HTTPTimeout, log)
	sessions := session.New(gw, storage.NewFile(cfg.SessionFile), log)
	carts := cart.New(gw, sessions, log)

	// Restoring a persisted session triggers the cart refresh through the
	// session subscription, same as a fresh login would.
	sessions.Restore()

	ctx := context.Background()

	if sessions.Current() == nil {
		if email, password := os.Getenv("STOREFRONT_EMAIL"), os.Getenv("STOREFRONT_PASSWORD"); email != "" {
			creds := domain.Credentials{Email: email, Password: password}
			if err := sessions.Login(ctx, creds); err != nil {
				log.Error("login failed", "error", err)
				os.Exit(1)
			}
		}
	}

	var (
		g        errgroup.Group
		products []domain.Product
		services []domain.Service
	)
	g.Go(func() (err error) {
		products, err = gw.ListProducts(ctx)
		return err
	})
	g.Go(func() (err error) {
		services, err = gw.ListServices(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("catalog warm-up failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("catalog: %d products, %d services\n", len(products), len(services))
	for _, p := range products {
		fmt.Printf("  [%s] %s — %s (stock %d)\n", labels.Category(p.Category), p.Name, p.Price, p.Stock)
	}

	if user := sessions.Current(); user != nil {
		fmt.Printf("signed in as %s (%s)\n", user.FullName, user.Email)
		fmt.Printf("cart: %d items, total %s\n", carts.TotalItems(), carts.TotalPrice())
		for _, item := range carts.Items() {
			fmt.Printf("  %dx %s — %s\n", item.Quantity, item.Product.Name, item.Product.Price.Mul(item.Quantity))
		}
	} else {
		fmt.Println("not signed in")
	}
}
