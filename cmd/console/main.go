package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"oficina_xpto/internal/domain/workflow"
	"oficina_xpto/internal/viewmodel"
	"oficina_xpto/pkg/client"

	_ "github.com/joho/godotenv/autoload"
)

// Minimal console front end over the view-model layer: login, kanban board,
// order detail with server-computed totals and the finance summary.
func main() {
	cfg, err := client.LoadConfig()
	if err != nil {
		log.Fatalf("client configuration: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("resolving home dir: %v", err)
	}
	store := viewmodel.FileTokenStore{Path: filepath.Join(home, ".oficina_token")}

	session := viewmodel.NewSession(store)
	api := client.New(cfg, session)
	notifier := viewmodel.NotifierFunc(func(msg string) {
		fmt.Println("! " + msg)
	})

	policy := workflow.FromName(os.Getenv("OS_STATUS_POLICY"))

	catalog := viewmodel.NewCatalogLoader(api, notifier)
	board := viewmodel.NewBoard(api, policy, notifier)
	finance := viewmodel.NewFinanceView(api, notifier)

	ctx := context.Background()
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("oficina console - comandos: login | board | os <id> | mover <id> <status> | resumo | sair")
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "login":
			fmt.Print("usuario: ")
			if !in.Scan() {
				return
			}
			username := strings.TrimSpace(in.Text())
			fmt.Print("senha: ")
			if !in.Scan() {
				return
			}
			password := strings.TrimSpace(in.Text())
			if err := session.Login(ctx, api, username, password); err != nil {
				fmt.Printf("login falhou: %v\n", err)
				continue
			}
			fmt.Println("autenticado")
			if err := catalog.Load(ctx); err == nil {
				fmt.Printf("catálogo: %d peças, %d serviços\n", len(catalog.Parts()), len(catalog.Services()))
			}

		case "board":
			if err := board.Load(ctx); err != nil {
				fmt.Printf("erro: %v\n", err)
				continue
			}
			for _, status := range []string{client.StatusOrcamento, client.StatusExecucao, client.StatusFinalizado} {
				fmt.Printf("%s:\n", status)
				for _, card := range board.Column(status) {
					fmt.Printf("  %s  %s\n", card.ID, card.ReportedDefect)
				}
			}

		case "mover":
			if len(fields) != 3 {
				fmt.Println("uso: mover <id> <status>")
				continue
			}
			if err := board.MoveCard(ctx, fields[1], strings.ToUpper(fields[2])); err != nil {
				fmt.Printf("erro: %v\n", err)
			}

		case "os":
			if len(fields) != 2 {
				fmt.Println("uso: os <id>")
				continue
			}
			orderSession := viewmodel.NewOrderSession(api, fields[1], notifier)
			if err := orderSession.Load(); err != nil {
				fmt.Printf("erro: %v\n", err)
				orderSession.Close()
				continue
			}
			detail, _ := orderSession.Detail()
			fmt.Printf("OS %s  status=%s\n", detail.ID, detail.Status)
			for _, l := range detail.PartLines {
				fmt.Printf("  peça    %-24s %d x %.2f = %.2f\n", l.Name, l.Quantity, l.UnitPrice, l.Subtotal)
			}
			for _, l := range detail.ServiceLines {
				fmt.Printf("  serviço %-24s %d x %.2f = %.2f\n", l.Description, l.Quantity, l.UnitPrice, l.Subtotal)
			}
			fmt.Printf("  total peças %.2f | total serviços %.2f | total geral %.2f | pago %.2f | saldo %.2f\n",
				detail.PartsTotal, detail.ServicesTotal, detail.GrandTotal, detail.PaidTotal, detail.Balance)
			orderSession.Close()

		case "resumo":
			if err := finance.Refresh(ctx); err != nil && !finance.Loaded() {
				fmt.Printf("erro: %v\n", err)
				continue
			}
			summary, degraded := finance.Summary()
			label := ""
			if degraded {
				label = " (calculado localmente)"
			}
			fmt.Printf("receitas %.2f | despesas %.2f | saldo %.2f%s\n",
				summary.ReceiptsTotal, summary.ExpensesTotal, summary.Balance, label)

		case "sair":
			return

		default:
			fmt.Println("comando desconhecido")
		}
	}
}
