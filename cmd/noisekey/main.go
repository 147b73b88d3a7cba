// Command noisekey generates and inspects stored Noise DH keys.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mr-tron/base58"

	"github.com/mycoria/noiseprim"
)

var (
	dhName  = flag.String("dh", string(noiseprim.DHChoice25519), "DH function to generate a key for")
	format  = flag.String("format", "text", "output format: text, json or cbor-base58")
	public  = flag.Bool("public", false, "only output the public key")
	inspect = flag.String("inspect", "", "inspect the given stored key in text format instead of generating one")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("noisekey: ")
	flag.Parse()

	resolver := noiseprim.DefaultResolver{}

	if *inspect != "" {
		if err := inspectKey(resolver, *inspect); err != nil {
			log.Fatalf("inspect: %v", err)
		}
		return
	}

	if err := generateKey(resolver); err != nil {
		log.Fatalf("generate: %v", err)
	}
}

func generateKey(r noiseprim.Resolver) error {
	choice, err := noiseprim.ParseDHChoice(*dhName)
	if err != nil {
		return err
	}
	dh, ok := r.ResolveDH(choice)
	if !ok {
		return fmt.Errorf("%w: dh %s", noiseprim.ErrNotProvided, choice)
	}
	defer dh.Burn()

	if err := dh.Generate(noiseprim.SystemRandom); err != nil {
		return err
	}

	var stored *noiseprim.StoredKey
	if *public {
		stored = noiseprim.ExportDHPublic(dh)
	} else {
		stored = noiseprim.ExportDH(dh)
	}
	defer stored.Burn()

	out, err := render(stored)
	if err != nil {
		return err
	}
	fmt.Println(out)
	fmt.Fprintf(os.Stderr, "fingerprint: %s\n", noiseprim.Fingerprint(dh.Name(), dh.PublicKey()))
	return nil
}

func render(stored *noiseprim.StoredKey) (string, error) {
	switch *format {
	case "text":
		return stored.Text(), nil
	case "json":
		data, err := stored.JSON()
		return string(data), err
	case "cbor-base58":
		data, err := stored.Bytes()
		if err != nil {
			return "", err
		}
		return base58.Encode(data), nil
	default:
		return "", fmt.Errorf("unknown format %q", *format)
	}
}

func inspectKey(r noiseprim.Resolver, text string) error {
	stored, err := noiseprim.LoadKeyFromText(text)
	if err != nil {
		return err
	}
	defer stored.Burn()

	fingerprint, err := stored.Fingerprint(r)
	if err != nil {
		return err
	}
	pubKey, err := stored.PublicKey(r)
	if err != nil {
		return err
	}

	visibility := "public"
	if stored.IsPrivate {
		visibility = "private"
	}
	fmt.Printf("type:        %s\n", stored.Type)
	fmt.Printf("visibility:  %s\n", visibility)
	fmt.Printf("public key:  %s\n", base58.Encode(pubKey))
	fmt.Printf("fingerprint: %s\n", fingerprint)
	return nil
}
