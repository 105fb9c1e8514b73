// tos-signer CLI - TOS key derivation, signing and shield crypto
//
// Every command prints YAML on stdout and logs to stderr.
//
// Example usage:
//
//	# Public key and address for seed byte 0x42
//	tos-signer pubkey -seed 0x42
//
//	# Sign a message
//	tos-signer sign -seed 0x42 -msg "Hello, world!"
//
//	# Build and sign a transfer frame
//	tos-signer frame -key <hex> -to tst1... -amount 500000000 -fee 1000 -nonce 7
//
//	# Shield an amount to a recipient
//	tos-signer shield -to tst1... -amount 1000
package main

import (
	"fmt"
	"io"
	"os"
)

const version = "v0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	var err error
	command, rest := args[0], args[1:]
	switch command {
	case "pubkey":
		err = cmdPubkey(rest, stdout, stderr)
	case "address":
		err = cmdAddress(rest, stdout, stderr)
	case "sign":
		err = cmdSign(rest, stdout, stderr)
	case "verify":
		err = cmdVerify(rest, stdout, stderr)
	case "frame":
		err = cmdFrame(rest, stdout, stderr)
	case "shield":
		err = cmdShield(rest, stdout, stderr)
	case "generators":
		err = cmdGenerators(rest, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "tos-signer %s\n", version)
	case "help", "--help", "-h":
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", command)
		printUsage(stderr)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `tos-signer - TOS transaction signer

Usage:
  tos-signer <command> [options]

Commands:
  pubkey       Derive a public key and address (-seed N | -key K)
  address      Encode (-pub HEX) or decode (-addr ADDR) an address
  sign         Sign a message (-seed N | -key K, -msg TEXT | -hex HEX)
  verify       Verify a signature (-pub, -msg | -hex, -sig)
  frame        Build and sign a transfers frame
  shield       Build shield transfer crypto (-to, -amount, or
               -fixtures -dest-seed N for deterministic test vectors)
  generators   Print the generators G and H
  version      Show version information
  help         Show this help message

Common options:
  -config PATH     YAML configuration file
  -network NAME    mainnet | testnet | stagenet | devnet
  -v               Debug logging

Private keys (-key) are 64 hex characters or base58check.`)
}
