// Command attr-decode decodes a STUN/TURN/ICE attribute block and
// prints every attribute it contains.
package main

import (
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pion/logging"

	"github.com/signalpath/stunattr"
)

var (
	hexInput = flag.Bool("hex", false, "treat input as hex instead of base64")
	tidInput = flag.String("tid", "", "base64-encoded 12-byte transaction ID for XOR address attributes")
	verbose  = flag.Bool("v", false, "log decode trace to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", "attr-decode")
		fmt.Fprintln(os.Stderr, "attr-decode ACAACAABnNX0nziu")
		fmt.Fprintln(os.Stderr, "First argument must be an encoded attribute block (attributes only, no message header)")
		flag.PrintDefaults()
	}
	flag.Parse()

	var (
		data []byte
		err  error
	)
	if *hexInput {
		data, err = hex.DecodeString(flag.Arg(0))
	} else {
		data, err = base64.StdEncoding.DecodeString(flag.Arg(0))
	}
	if err != nil {
		log.Fatalln("Unable to decode input value:", err)
	}

	var tid stunattr.TransactionID
	if *tidInput != "" {
		raw, err := base64.StdEncoding.DecodeString(*tidInput)
		if err != nil {
			log.Fatalln("Unable to decode transaction ID:", err)
		}
		if len(raw) != stunattr.TransactionIDSize {
			log.Fatalf("Transaction ID must be %d bytes, got %d", stunattr.TransactionIDSize, len(raw))
		}
		copy(tid[:], raw)
	}

	loggerFactory := logging.NewDefaultLoggerFactory()
	if *verbose {
		loggerFactory.DefaultLogLevel = logging.LogLevelTrace
	}
	dec := stunattr.NewDecoder(&stunattr.DecoderConfig{
		LoggerFactory: loggerFactory,
	})

	attrs, err := dec.DecodeAll(data, tid)
	for _, a := range attrs {
		fmt.Printf("%s (0x%04x, %d bytes): %v\n", a.Name(), a.Type().Value(), a.DataLength(), a)
	}
	if err != nil {
		log.Fatalln("Unable to decode attributes:", err)
	}
}
