package main

import (
	"fmt"
	"log"

	"github.com/keysig/secp256k1-go/pkg/secp256k1"
)

func main() {
	log.Printf("secp256k1-go version: %s", secp256k1.WrapperVersion())

	ctx, err := secp256k1.NewContext()
	if err != nil {
		log.Fatalf("unexpected failure creating context: %v", err)
	}
	defer func() {
		if cerr := ctx.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	fmt.Println("context created and randomized successfully")
}
