package telegram

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	app "traffic-density/internal/application"
	"traffic-density/internal/container"
	"traffic-density/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я слежу за загруженностью дорог по камерам.

📋 Команды:
/cameras — список камер
/density <камера> — загруженность сейчас
/run — опросить все маршруты
/history <камера> — последние замеры
/help — справка`

	msgHelp = `ℹ️ Как это работает:

1️⃣ Для каждой камеры есть эталонный снимок с зелёными границами зоны
2️⃣ Бот загружает живой снимок и ищет на нём транспорт
3️⃣ Доля площади зоны, занятой машинами, даёт уровень:
• LIGHT — меньше 40%
• MODERATE — от 40% до 60%
• HEAVY — от 60%
• NA — оценка невозможна

💡 Камеру можно указать частью названия, например: /density CAM 23`

	msgUnknownCommand = "❓ Неизвестная команда. Используйте /help для справки."
	msgNeedCamera     = "📷 Укажите камеру, например: /density CAM 23"
	msgSendCommand    = "Используйте /help, чтобы увидеть список команд."
	msgProcessing     = "⏳ Опрашиваю камеры..."
	msgNoHistory      = "📭 Замеров для этой камеры пока нет."
	msgNoStorage      = "⚠️ Хранилище замеров не настроено."
)

var levelIcons = map[entity.DensityLevel]string{
	entity.LevelLight:    "🟢",
	entity.LevelModerate: "🟡",
	entity.LevelHeavy:    "🔴",
	entity.LevelNA:       "⚪",
}

// Bot представляет Telegram-бота
type Bot struct {
	api       *tgbotapi.BotAPI
	container *container.Container
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info().Str("account", api.Self.UserName).Msg("telegram bot authorized")

	return &Bot{
		api:       api,
		container: c,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if !msg.IsCommand() {
		b.sendMessage(msg.Chat.ID, msgSendCommand)
		return
	}

	if msg.Command() == "run" {
		b.sendMessage(msg.Chat.ID, msgProcessing)
	}
	b.sendMessage(msg.Chat.ID, b.reply(ctx, msg.Command(), msg.CommandArguments()))
}

// reply формирует ответ на команду
func (b *Bot) reply(ctx context.Context, command, args string) string {
	switch command {
	case "start":
		return msgStart

	case "help":
		return msgHelp

	case "cameras":
		return b.cameraList()

	case "density":
		cameraID, err := b.resolveCamera(args)
		if err != nil {
			return err.Error()
		}
		res, err := b.container.CongestionService.Evaluate(ctx, cameraID)
		return formatDensity(cameraID, res, err)

	case "run":
		run, err := b.container.CollectionService.Run(ctx, b.container.Routes)
		if err != nil {
			log.Error().Err(err).Msg("collection run from bot")
		}
		return formatRun(run)

	case "history":
		if b.container.Observations == nil {
			return msgNoStorage
		}
		cameraID, err := b.resolveCamera(args)
		if err != nil {
			return err.Error()
		}
		list, err := b.container.Observations.History(ctx, cameraID, 5)
		if err != nil {
			log.Error().Err(err).Str("camera_id", cameraID).Msg("load history")
			return "⚠️ Не удалось загрузить историю."
		}
		return formatHistory(cameraID, list)

	default:
		return msgUnknownCommand
	}
}

// resolveCamera ищет камеру по точному названию или уникальной подстроке
func (b *Bot) resolveCamera(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", errors.New(msgNeedCamera)
	}

	cameras := b.container.CongestionService.Cameras()
	if _, ok := cameras[query]; ok {
		return query, nil
	}

	var matches []string
	q := strings.ToLower(query)
	for id := range cameras {
		if strings.Contains(strings.ToLower(id), q) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("❓ Камера %q не найдена. Список: /cameras", query)
	case 1:
		return matches[0], nil
	default:
		sort.Strings(matches)
		return "", fmt.Errorf("🔎 Под запрос подходит несколько камер:\n%s", strings.Join(matches, "\n"))
	}
}

func (b *Bot) cameraList() string {
	cameras := b.container.CongestionService.Cameras()
	ids := make([]string, 0, len(cameras))
	for id := range cameras {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return "📷 Камеры:\n" + strings.Join(ids, "\n")
}

func formatDensity(cameraID string, res entity.DensityResult, err error) string {
	if !res.HasDensity() {
		reason := "нет данных"
		if err != nil {
			reason = err.Error()
		}
		return fmt.Sprintf("%s %s: NA (%s)", levelIcons[entity.LevelNA], cameraID, reason)
	}
	return fmt.Sprintf("%s %s: %s (%.1f%%)", levelIcons[res.Level], cameraID, res.Level, res.Density)
}

func formatRun(run *app.Run) string {
	if run == nil {
		return "⚠️ Прогон не выполнен."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "🛣 Прогон %s\n", run.ID[:8])
	for _, rr := range run.Routes {
		if rr.CameraID == "" {
			continue
		}
		fmt.Fprintf(&sb, "%s %s → %s: %s\n", levelIcons[rr.Result.Level], rr.Route.Origin, rr.Route.Destination, rr.Result.Level)
	}
	fmt.Fprintf(&sb, "Камер опрошено: %d", run.Cameras)
	return sb.String()
}

func formatHistory(cameraID string, list []entity.Observation) string {
	if len(list) == 0 {
		return msgNoHistory
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "🕘 %s\n", cameraID)
	for _, o := range list {
		line := string(o.Level)
		if o.Level != entity.LevelNA {
			line = fmt.Sprintf("%s (%.1f%%)", o.Level, o.Density)
		}
		fmt.Fprintf(&sb, "%s %s %s\n", levelIcons[o.Level], o.ObservedAt.Local().Format("02.01 15:04"), line)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("send message")
	}
}
