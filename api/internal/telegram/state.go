package telegram

import (
	"math/rand"
	"sync"

	"draw-guess/api/internal/vision"
)

// maxPixels bounds the PNG sent to the proxy; a drawing needs far less than a camera photo.
const maxPixels = 1_000_000

var chatWord sync.Map // chatID -> string: current target word, absent in free drawing

func setWord(chatID int64, w string) { chatWord.Store(chatID, w) }
func getWord(chatID int64) string {
	if v, ok := chatWord.Load(chatID); ok {
		if s, _ := v.(string); s != "" {
			return s
		}
	}
	return ""
}
func clearWord(chatID int64) { chatWord.Delete(chatID) }

func pickWord() string {
	return vision.Vocabulary[rand.Intn(len(vision.Vocabulary))]
}
