// cmd/bot/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"golang.org/x/text/encoding/charmap"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"multibank-aggregator/internal/domain"
	"multibank-aggregator/internal/engine"
	"multibank-aggregator/internal/storage"
	"multibank-aggregator/internal/storage/mock"
)

func main() {
	_ = godotenv.Load()

	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if botToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN not set")
	}

	// Для бота задержка снимка не нужна: данные и так в памяти.
	source := mock.NewSource(0)

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Panic(err)
	}

	log.Printf("Bot started: @%s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		chatID := update.Message.Chat.ID

		rawText := update.Message.Text
		text := strings.TrimSpace(fixEncoding(rawText))

		log.Printf("📥 Received: %q", text)

		var msgText string
		var err error

		switch {
		case text == "/start" || text == "/help":
			msgText = "🏦 *Мультибанк*\n\n" +
				"Команды:\n" +
				"`/best_card Рестораны` — лучшая карта для категории\n" +
				"`/exchange 10000 USD` — сравнить курсы обмена\n" +
				"`/plan 250000` — план оплаты с нескольких счетов\n" +
				"`/refinance` — предложения по рефинансированию\n" +
				"`/accounts` — список счетов"

		case strings.HasPrefix(text, "/best_card "):
			category := strings.TrimSpace(text[len("/best_card "):])
			msgText, err = handleBestCard(source, category)

		case strings.HasPrefix(text, "/exchange "):
			msgText, err = handleExchange(source, strings.Fields(text[len("/exchange "):]))

		case strings.HasPrefix(text, "/plan "):
			msgText, err = handlePlan(source, strings.TrimSpace(text[len("/plan "):]))

		case text == "/refinance":
			msgText, err = handleRefinance(source)

		case text == "/accounts":
			msgText, err = handleAccounts(source)

		default:
			msgText = "Не понимаю 🤔 Напиши /help"
		}

		if err != nil {
			log.Printf("❌ Command failed: %v", err)
			msgText = "Что-то пошло не так, попробуйте еще раз"
		}

		msg := tgbotapi.NewMessage(chatID, msgText)
		msg.ParseMode = "Markdown"
		if _, err := bot.Send(msg); err != nil {
			log.Printf("❌ Send failed: %v", err)
		}
	}
}

func fetchSnapshot(source storage.FinancialDataSource) (*domain.FinancialData, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return source.FetchFinancialData(ctx)
}

func handleBestCard(source storage.FinancialDataSource, category string) (string, error) {
	data, err := fetchSnapshot(source)
	if err != nil {
		return "", err
	}

	best := engine.BestAccountForCategory(data.Accounts, data.SmartPay.IncludedAccountIDs, data.CashbackCategories, category)
	if best.Account == nil {
		return "📭 Нет подходящей карты для категории «" + category + "»", nil
	}
	return fmt.Sprintf("💳 *%s* (%s)\nКэшбэк: %.0f%% в категории «%s»",
		best.Account.Name, best.Account.BankName, best.Rate, category), nil
}

func handleExchange(source storage.FinancialDataSource, args []string) (string, error) {
	if len(args) < 2 {
		return "Формат: `/exchange 10000 USD`", nil
	}
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		amount = 0
	}
	to := domain.Currency(strings.ToUpper(args[1]))

	data, err := fetchSnapshot(source)
	if err != nil {
		return "", err
	}

	options := engine.CompareRates(data.ExchangeRates, amount, domain.CurrencyRUB, to)
	if len(options) == 0 {
		var known []string
		for _, cur := range engine.AvailableCurrencies(data.ExchangeRates) {
			known = append(known, string(cur))
		}
		return "📭 Нет котировок для пары RUB/" + string(to) +
			"\nДоступные валюты: " + strings.Join(known, ", "), nil
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("💱 *%.0f RUB → %s*", amount, to))
	for i, opt := range options {
		line := fmt.Sprintf("%d. %s: %.2f %s (курс %.2f)", i+1, opt.BankName, opt.Result, to, opt.Sell)
		if opt.Promotion != "" {
			line += " — " + opt.Promotion
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func handlePlan(source storage.FinancialDataSource, amountStr string) (string, error) {
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		amount = 0
	}

	data, err := fetchSnapshot(source)
	if err != nil {
		return "", err
	}
	if len(data.Accounts) == 0 {
		return "📭 Нет счетов", nil
	}

	plan := engine.PlanDebiting(data.Accounts, data.Accounts[0].ID, amount)
	if plan == nil {
		return "📭 Основной счет не найден", nil
	}
	if plan.Sufficient {
		return fmt.Sprintf("✅ На счете *%s* достаточно средств для покупки на %.2f ₽", data.Accounts[0].Name, amount), nil
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("💸 *План оплаты %.2f ₽* (не хватает %.2f ₽)", amount, plan.Shortfall))
	for i, step := range plan.Steps {
		lines = append(lines, fmt.Sprintf("%d. %s (%s): %.2f ₽", i+1, step.AccountName, step.AccountBank, step.Amount))
	}
	if !plan.FullyCovered {
		lines = append(lines, "⚠️ Даже со всех счетов сумма не набирается полностью")
	}
	return strings.Join(lines, "\n"), nil
}

func handleRefinance(source storage.FinancialDataSource) (string, error) {
	data, err := fetchSnapshot(source)
	if err != nil {
		return "", err
	}

	matches := engine.MatchRefinancing(data.Loans, data.RefinancingOffers)
	if len(matches) == 0 {
		return "📭 Выгодных предложений по рефинансированию нет", nil
	}

	var lines []string
	lines = append(lines, "🏦 *Рефинансирование*")
	for _, m := range matches {
		lines = append(lines, fmt.Sprintf("\n*%s* (%.1f%% в %s)\n→ %s: %.1f%%, экономия ~%.0f ₽/мес",
			m.Loan.Name, m.Loan.InterestRate, m.Loan.BankName,
			m.Offer.BankName, m.Offer.NewInterestRate, m.MonthlySaving))
	}
	return strings.Join(lines, "\n"), nil
}

func handleAccounts(source storage.FinancialDataSource) (string, error) {
	data, err := fetchSnapshot(source)
	if err != nil {
		return "", err
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("💼 *Счета* (всего %.2f ₽)", engine.NetWorth(data.Accounts)))
	for _, acc := range data.Accounts {
		lines = append(lines, fmt.Sprintf("- %s (%s, •%s): %.2f ₽", acc.Name, acc.BankName, acc.Last4, acc.Balance))
	}

	if data.NightSafe.Enabled {
		sweep := engine.SweepPotential(data.Accounts, data.NightSafe.IncludedAccountIDs, data.NightSafe.TargetAccountID)
		lines = append(lines, fmt.Sprintf("\n🌙 Ночной сейф может перевести %.2f ₽ на накопительный счет", sweep))
	}
	return strings.Join(lines, "\n"), nil
}

func fixEncoding(s string) string {
	// Проверим, является ли строка валидной UTF-8
	if utf8.ValidString(s) {
		return s
	}

	// Пробуем перекодировать из windows-1251
	decoder := charmap.Windows1251.NewDecoder()
	fixed, err := decoder.String(s)
	if err == nil && utf8.ValidString(fixed) {
		return fixed
	}

	// Если не получилось — заменяем невалидные символы
	return strings.ToValidUTF8(s, "")
}
