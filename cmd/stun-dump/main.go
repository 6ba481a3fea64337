// Command stun-dump decodes a single base64-encoded STUN message and
// prints its summary. It does no networking; it is a debugging aid for
// messages captured elsewhere (e.g. from a packet trace).
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"

	stun "github.com/arcturuslabs/stunice"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", "stun-dump")
		fmt.Fprintln(os.Stderr, "stun-dump AAEAHCESpEJML0JTQWsyVXkwcmGALwAWaHR0cDovL2xvY2FsaG9zdDozMDAwLwAA")
		fmt.Fprintln(os.Stderr, "First argument must be a base64.StdEncoding-encoded message")
		flag.PrintDefaults()
	}
	flag.Parse()
	data, err := base64.StdEncoding.DecodeString(flag.Arg(0))
	if err != nil {
		log.Fatalln("unable to decode base64 value:", err)
	}
	m := &stun.Message{Raw: data}
	if err := m.Decode(); err != nil {
		log.Fatalln("unable to decode message:", err)
	}
	fmt.Println(m)
	for _, a := range m.Attributes {
		fmt.Printf("  %s (len=%d)\n", a.Type, a.Length)
	}
}
