package ncd

import (
	"bufio"
	"fmt"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"numcore.dev/ncd/decoder"
)

func init() {
	functions.HTTP("DecodeLines", DecodeHTTP)
}

// DecodeHTTP decodes the plaintext lines of the request body and writes
// one decoded line per input line, in the same order.
func DecodeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST a text body to decode", http.StatusMethodNotAllowed)
		return
	}

	d := decoder.CreateDecoder()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	scanner := bufio.NewScanner(r.Body)
	for scanner.Scan() {
		fmt.Fprintln(w, d.DecodeLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		http.Error(w, fmt.Sprintf("reading body: %v", err), http.StatusBadRequest)
	}
}
