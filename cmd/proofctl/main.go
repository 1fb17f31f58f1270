// Command proofctl is a CLI for driving a remote proof verification
// service, the HTTP analogue of tools/proverctl: initialize a client type,
// load proof bytes into its cache, ask it to verify, or clear the cache.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/davidt58/peptide-event-verifier/config"
	"github.com/davidt58/peptide-event-verifier/eth"
	"github.com/davidt58/peptide-event-verifier/proverclient"
)

func main() {
	godotenv.Load()

	logger := log.New(os.Stdout, "[proofctl] ", log.LstdFlags)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	serviceURL := os.Getenv("PROVER_SERVICE_URL")
	if serviceURL == "" {
		logger.Fatal("PROVER_SERVICE_URL is not set")
	}
	c := proverclient.NewClient(serviceURL)

	switch os.Args[1] {
	case "initialize":
		runInitialize(c, logger, os.Args[2:])
	case "load-proof":
		runLoadProof(c, logger, os.Args[2:])
	case "verify":
		runVerify(c, logger, os.Args[2:])
	case "clear-cache":
		runClearCache(c, logger)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: proofctl <initialize|load-proof|verify|clear-cache> [flags]")
}

func runInitialize(c *proverclient.Client, logger *log.Logger, args []string) {
	fs := flag.NewFlagSet("initialize", flag.ExitOnError)
	clientType := fs.String("client-type", "", "client type identifier")
	signerAddr := fs.String("signer-addr", "", "expected signer address, hex encoded")
	peptideChainID := fs.Uint64("peptide-chain-id", 0, "peptide chain id")
	fs.Parse(args)

	if *clientType == "" || *signerAddr == "" {
		logger.Fatal("--client-type and --signer-addr are required")
	}

	addr, err := eth.AddressFromHex(*signerAddr)
	if err != nil {
		logger.Fatalf("invalid signer address: %v", err)
	}

	acct, err := config.NewAccountConfig(*clientType, addr, *peptideChainID)
	if err != nil {
		logger.Fatalf("invalid account configuration: %v", err)
	}

	if err := c.Initialize(acct.ClientType, acct.SignerAddr, acct.PeptideChainID); err != nil {
		logger.Fatalf("initialize failed: %v", err)
	}
	logger.Printf("initialized %s", acct)
}

func runLoadProof(c *proverclient.Client, logger *log.Logger, args []string) {
	fs := flag.NewFlagSet("load-proof", flag.ExitOnError)
	hexProof := fs.String("hex", "", "proof chunk, hex encoded")
	fs.Parse(args)

	if *hexProof == "" {
		logger.Fatal("--hex is required")
	}

	chunk, err := hex.DecodeString(*hexProof)
	if err != nil {
		logger.Fatalf("invalid hex: %v", err)
	}

	total, err := c.LoadProof(chunk)
	if err != nil {
		logger.Fatalf("load-proof failed: %v", err)
	}
	logger.Printf("cache now holds %d bytes", total)
}

func runVerify(c *proverclient.Client, logger *log.Logger, args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	clientType := fs.String("client-type", "", "client type identifier")
	fs.Parse(args)

	if *clientType == "" {
		logger.Fatal("--client-type is required")
	}

	resp, err := c.Verify(*clientType)
	if err != nil {
		logger.Fatalf("verify failed: %v", err)
	}
	logger.Printf("result: %+v", *resp)
}

func runClearCache(c *proverclient.Client, logger *log.Logger) {
	if err := c.ClearCache(); err != nil {
		logger.Fatalf("clear-cache failed: %v", err)
	}
	logger.Println("cache cleared")
}
