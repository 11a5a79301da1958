package slip

import "context"

// Recognizer turns a slip image into a best-effort block of text. The
// actual engine (Tesseract, a vision model, ...) lives outside this core;
// implementations may be slow and are expected to honor ctx cancellation.
// Output may be empty, garbled or mixed-script and downstream parsing must
// tolerate all of that.
type Recognizer interface {
	RecognizeText(ctx context.Context, image []byte) (string, error)
}
