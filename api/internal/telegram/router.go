package telegram

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"draw-guess/api/internal/vision/types"
)

// Guesser is the analyze proxy as the bot sees it (see client.Client).
type Guesser interface {
	Analyze(ctx context.Context, imageBase64, targetWord string) (types.AnalyzeResult, error)
	Health(ctx context.Context) error
}

type Router struct {
	Bot     *tgbotapi.BotAPI
	Guesser Guesser
}

func (r *Router) HandleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		r.send(cid, "Hi! Let's play a drawing game. I give you a word, you draw it on paper and send me a photo.\n"+
			"Commands: /word, /skip, /health")
		r.dealWord(cid)
	case "word":
		r.dealWord(cid)
	case "skip":
		clearWord(cid)
		r.send(cid, "Free drawing! Send me any picture and I will guess what it is.")
	case "health":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.Guesser.Health(ctx); err != nil {
			r.send(cid, "⚠️ proxy is not available: "+err.Error())
			return
		}
		r.send(cid, "✅ OK")
	default:
		r.send(cid, "Unknown command")
	}
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.CallbackQuery != nil {
		r.handleCallback(*upd.CallbackQuery)
		return
	}
	if upd.Message == nil {
		return
	}
	if upd.Message.IsCommand() {
		r.HandleCommand(upd)
		return
	}
	if len(upd.Message.Photo) > 0 {
		go r.acceptPhoto(*upd.Message)
		return
	}
	r.send(upd.Message.Chat.ID, "Send me a photo of your drawing 🖍")
}

// dealWord picks a new target word for the chat and announces it.
func (r *Router) dealWord(chatID int64) {
	w := pickWord()
	setWord(chatID, w)
	r.send(chatID, fmt.Sprintf("Draw %s %s!", article(w), w))
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := r.Bot.Send(msg); err != nil {
		log.Printf("bot: send to %d: %v", chatID, err)
	}
}

func (r *Router) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := r.Bot.Send(msg); err != nil {
		log.Printf("bot: send to %d: %v", chatID, err)
	}
}

func (r *Router) SendError(chatID int64, err error) {
	log.Printf("bot: chat %d: %v", chatID, err)
	r.send(chatID, "Oops, something went wrong. Please send the photo again.")
}
