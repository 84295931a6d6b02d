package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"draw-guess/api/internal/vision/types"
)

const cbNewWord = "new_word"

func makeNewWordKeyboard() tgbotapi.InlineKeyboardMarkup {
	btn := tgbotapi.NewInlineKeyboardButtonData("New word", cbNewWord)
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(btn))
}

// replyText is what the child reads after a guess.
func replyText(res types.AnalyzeResult, target string) string {
	switch res.Confidence {
	case types.ConfidenceError:
		return "Oops, I can't look at drawings right now. Please try again in a moment."
	case types.ConfidenceLow:
		return "Hmm, I could not tell what this is. Try drawing it bigger and bolder!"
	}
	switch {
	case res.IsCorrect == nil:
		return fmt.Sprintf("I think it's %s %s!", article(res.Guess), res.Guess)
	case *res.IsCorrect:
		return fmt.Sprintf("Yes! It's %s %s! 🎉", article(res.Guess), res.Guess)
	default:
		return fmt.Sprintf("I think it's %s %s. Can you draw %s %s?",
			article(res.Guess), res.Guess, article(target), target)
	}
}

func article(w string) string {
	if w != "" && strings.ContainsRune("aeiou", rune(strings.ToLower(w)[0])) {
		return "an"
	}
	return "a"
}
