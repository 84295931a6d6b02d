package telegram

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"draw-guess/api/internal/util"
	"draw-guess/api/internal/vision/types"
)

func (r *Router) acceptPhoto(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	ph := msg.Photo[len(msg.Photo)-1]
	file, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: ph.FileID})
	if err != nil {
		r.SendError(cid, err)
		return
	}
	imgBytes, err := download(file.Link(r.Bot.Token))
	if err != nil {
		r.SendError(cid, err)
		return
	}

	pngBytes, err := toPNG(imgBytes)
	if err != nil {
		r.SendError(cid, fmt.Errorf("png: %w", err))
		return
	}
	dataURL := util.MakeDataURL("image/png", base64.StdEncoding.EncodeToString(pngBytes))

	target := getWord(cid)
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	res, err := r.Guesser.Analyze(ctx, dataURL, target)
	if err != nil {
		// only input validation fails here; the photo itself is unusable
		r.SendError(cid, err)
		return
	}

	text := replyText(res, target)
	if res.Confidence == types.ConfidenceHigh && res.IsCorrect != nil && *res.IsCorrect {
		clearWord(cid)
		r.sendWithKeyboard(cid, text, makeNewWordKeyboard())
		return
	}
	r.send(cid, text)
}

// toPNG re-encodes a photo as PNG (the proxy tags every image as PNG) and
// shrinks it to at most maxPixels.
func toPNG(b []byte) ([]byte, error) {
	img, err := tryDecodeStrict(b)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty image")
	}

	final := img
	if total := w * h; total > maxPixels {
		scale := math.Sqrt(float64(maxPixels) / float64(total))
		newW := max(int(float64(w)*scale+0.5), 1)
		newH := max(int(float64(h)*scale+0.5), 1)
		final = scaleDownNN(img, newW, newH)
	}

	var out bytes.Buffer
	if err := png.Encode(&out, final); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func tryDecodeStrict(b []byte) (image.Image, error) {
	switch util.SniffMimeHTTP(b) {
	case "image/jpeg":
		return jpeg.Decode(bytes.NewReader(b))
	case "image/png":
		return png.Decode(bytes.NewReader(b))
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	return img, err
}

func scaleDownNN(src image.Image, newW, newH int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	sb := src.Bounds()
	srcW := sb.Dx()
	srcH := sb.Dy()
	for y := 0; y < newH; y++ {
		sy := sb.Min.Y + (y*srcH)/newH
		for x := 0; x < newW; x++ {
			sx := sb.Min.X + (x*srcW)/newW
			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst
}

func download(url string) ([]byte, error) {
	resp, err := httpClient().Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}

func httpClient() *http.Client {
	return &http.Client{Timeout: 60 * time.Second}
}
