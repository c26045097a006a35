package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/voltshop/internal/client/auth"
	"github.com/dmitrijs2005/voltshop/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// check marks the session as gone when the backend can no longer be reached
// with the stored tokens.
func (a *App) check(err error) error {
	if errors.Is(err, auth.ErrAuthRequired) {
		a.loggedIn = false
		a.userName = ""
	}
	return err
}

// Login prompts for credentials, stores the token pair and prints a short
// overview of the catalog and inbox.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if err := a.authService.Login(ctx, userName, password); err != nil {
		a.logger.Info(ctx, "login unsuccessful", "user", userName, "error", err)
		return err
	}
	a.userName, a.loggedIn = userName, true
	fmt.Fprintln(a.out, "Login successful")

	home, err := a.shopService.Home(ctx)
	if err != nil {
		return a.check(err)
	}
	fmt.Fprintf(a.out, "%d products in the catalog, %d messages\n", len(home.Products), len(home.Messages))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.userName, a.loggedIn = "", false
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Products(ctx context.Context, args []string) error {
	products, err := a.shopService.Products(ctx, strings.Join(args, " "))
	if err != nil {
		return a.check(err)
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBRAND\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Brand, p.Price, p.Stock)
	}
	return w.Flush()
}

func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("show <id>")
	}
	p, err := a.shopService.Product(ctx, args[0])
	if err != nil {
		return a.check(err)
	}
	fmt.Fprintf(a.out, "%s (%s)\n", p.Name, p.ID)
	fmt.Fprintf(a.out, "Brand:    %s\n", p.Brand)
	fmt.Fprintf(a.out, "Category: %s\n", p.Category)
	fmt.Fprintf(a.out, "Price:    %s\n", p.Price)
	fmt.Fprintf(a.out, "In stock: %d\n", p.Stock)
	if p.Description != "" {
		fmt.Fprintln(a.out, p.Description)
	}
	return nil
}

func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usageError("add <id> [qty]")
	}
	qty := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return usageError("add <id> [qty]")
		}
		qty = n
	}
	p, err := a.shopService.AddToCart(ctx, args[0], qty)
	if err != nil {
		return a.check(err)
	}
	fmt.Fprintf(a.out, "Added %d x %s\n", qty, p.Name)
	return nil
}

func (a *App) Cart(ctx context.Context) error {
	items, total, err := a.shopService.Cart(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}
	printItems(a, items)
	fmt.Fprintf(a.out, "Total: %s\n", total)
	return nil
}

func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("remove <id>")
	}
	if err := a.shopService.RemoveFromCart(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Removed", args[0])
	return nil
}

func (a *App) Checkout(ctx context.Context) error {
	items, total, err := a.shopService.Cart(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}
	printItems(a, items)
	fmt.Fprintf(a.out, "Total: %s\n", total)

	address, err := getSimpleText(a.reader, "Shipping address", a.out)
	if err != nil {
		return err
	}
	payment, err := getSimpleText(a.reader, "Payment method (card, cash)", a.out)
	if err != nil {
		return err
	}

	order, err := a.shopService.Checkout(ctx, address, payment)
	if err != nil {
		return a.check(err)
	}
	fmt.Fprintf(a.out, "Order %s placed (%s), total %s\n", order.ID, order.Status, order.Total)
	return nil
}

func (a *App) Orders(ctx context.Context) error {
	orders, err := a.shopService.Orders(ctx)
	if err != nil {
		return a.check(err)
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders yet")
		return nil
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tITEMS\tTOTAL\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", o.ID, o.Status, len(o.Lines), o.Total, o.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func (a *App) Messages(ctx context.Context) error {
	msgs, err := a.shopService.Messages(ctx)
	if err != nil {
		return a.check(err)
	}
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, "No messages")
		return nil
	}
	for _, m := range msgs {
		fmt.Fprintf(a.out, "[%s] %s: %s\n", m.CreatedAt.Format("2006-01-02 15:04"), m.From, m.Body)
	}
	return nil
}

func (a *App) Send(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("send <text>")
	}
	m, err := a.shopService.SendMessage(ctx, strings.Join(args, " "))
	if err != nil {
		return a.check(err)
	}
	fmt.Fprintln(a.out, "Message sent:", m.ID)
	return nil
}

func printItems(a *App, items []models.CartItem) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tPRICE\tSUBTOTAL")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", it.ProductID, it.Name, it.Quantity, it.Price, it.Subtotal())
	}
	_ = w.Flush()
}
