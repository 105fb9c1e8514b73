package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/tos-network/tos-signer/pkg/address"
	"github.com/tos-network/tos-signer/pkg/api"
	"github.com/tos-network/tos-signer/pkg/tx"
)

// keyFlags selects a signing key by seed byte or private key text.
type keyFlags struct {
	seed string
	key  string
}

func (k *keyFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&k.seed, "seed", "", "seed byte (decimal or 0x hex)")
	fs.StringVar(&k.key, "key", "", "private key (64 hex chars or base58check)")
}

// privateKey returns the 32-byte key material. A seed byte b is the key
// b || 0x00 * 31.
func (k *keyFlags) privateKey() ([32]byte, error) {
	var out [32]byte
	switch {
	case k.seed != "" && k.key != "":
		return out, errors.New("use only one of -seed and -key")
	case k.seed != "":
		b, err := parseSeedByte(k.seed)
		if err != nil {
			return out, err
		}
		out[0] = b
		return out, nil
	case k.key != "":
		return address.ParsePrivateKey(k.key)
	}
	return out, errors.New("-seed or -key is required")
}

type pubkeyOutput struct {
	PublicKey string `yaml:"public_key"`
	Address   string `yaml:"address"`
}

func cmdPubkey(args []string, stdout, stderr io.Writer) error {
	fs, common := newFlagSet("pubkey", stderr)
	var keys keyFlags
	keys.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, err := common.service(stderr)
	if err != nil {
		return err
	}
	priv, err := keys.privateKey()
	if err != nil {
		return err
	}

	ctx := context.Background()
	pub, err := svc.PublicKeyFromPrivate(ctx, priv[:])
	if err != nil {
		return err
	}
	addr, err := svc.Address(ctx, pub)
	if err != nil {
		return err
	}
	return writeYAML(stdout, pubkeyOutput{PublicKey: hex.EncodeToString(pub[:]), Address: addr})
}

type addressOutput struct {
	PublicKey string `yaml:"public_key"`
	Address   string `yaml:"address"`
	Mainnet   bool   `yaml:"mainnet"`
}

func cmdAddress(args []string, stdout, stderr io.Writer) error {
	fs, common := newFlagSet("address", stderr)
	pubHex := fs.String("pub", "", "public key to encode (hex)")
	addr := fs.String("addr", "", "address to decode")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *addr != "" {
		pub, mainnet, err := address.Decode(*addr)
		if err != nil {
			return err
		}
		return writeYAML(stdout, addressOutput{PublicKey: hex.EncodeToString(pub[:]), Address: *addr, Mainnet: mainnet})
	}

	svc, err := common.service(stderr)
	if err != nil {
		return err
	}
	pub, err := parseHex32("public key", *pubHex)
	if err != nil {
		return err
	}
	encoded, err := svc.Address(context.Background(), pub)
	if err != nil {
		return err
	}
	return writeYAML(stdout, addressOutput{PublicKey: *pubHex, Address: encoded, Mainnet: svc.Config().Mainnet()})
}

type signOutput struct {
	PublicKey string `yaml:"public_key"`
	Message   string `yaml:"message"`
	Signature string `yaml:"signature"`
}

func cmdSign(args []string, stdout, stderr io.Writer) error {
	fs, common := newFlagSet("sign", stderr)
	var keys keyFlags
	keys.register(fs)
	text := fs.String("msg", "", "message text")
	hexText := fs.String("hex", "", "message bytes (hex)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, err := common.service(stderr)
	if err != nil {
		return err
	}
	priv, err := keys.privateKey()
	if err != nil {
		return err
	}
	msg, err := message(*text, *hexText)
	if err != nil {
		return err
	}

	ctx := context.Background()
	pub, err := svc.PublicKeyFromPrivate(ctx, priv[:])
	if err != nil {
		return err
	}
	sig, err := svc.SignWithKey(ctx, msg, priv[:])
	if err != nil {
		return err
	}
	return writeYAML(stdout, signOutput{
		PublicKey: hex.EncodeToString(pub[:]),
		Message:   hex.EncodeToString(msg),
		Signature: hex.EncodeToString(sig[:]),
	})
}

type verifyOutput struct {
	Valid bool `yaml:"valid"`
}

func cmdVerify(args []string, stdout, stderr io.Writer) error {
	fs, common := newFlagSet("verify", stderr)
	pubText := fs.String("pub", "", "public key (hex or address)")
	text := fs.String("msg", "", "message text")
	hexText := fs.String("hex", "", "message bytes (hex)")
	sigHex := fs.String("sig", "", "signature (hex)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, err := common.service(stderr)
	if err != nil {
		return err
	}
	pub, err := parsePublicKey(*pubText)
	if err != nil {
		return err
	}
	msg, err := message(*text, *hexText)
	if err != nil {
		return err
	}
	sig, err := hex.DecodeString(*sigHex)
	if err != nil {
		return err
	}

	ok, err := svc.Verify(context.Background(), pub[:], msg, sig)
	if err != nil {
		return err
	}
	return writeYAML(stdout, verifyOutput{Valid: ok})
}

type frameOutput struct {
	ChainID   uint8  `yaml:"chain_id"`
	Source    string `yaml:"source"`
	Payload   string `yaml:"payload"`
	Frame     string `yaml:"frame"`
	Signature string `yaml:"signature"`
}

func cmdFrame(args []string, stdout, stderr io.Writer) error {
	fs, common := newFlagSet("frame", stderr)
	var keys keyFlags
	keys.register(fs)
	to := fs.String("to", "", "destination (hex or address)")
	assetHex := fs.String("asset", "", "asset hash (hex, default TOS)")
	amount := fs.Uint64("amount", 0, "amount in atomic units")
	extraHex := fs.String("extra", "", "extra data (hex)")
	fee := fs.Uint64("fee", 0, "fee")
	feeType := fs.Uint("fee-type", uint(tx.FeeTypeTOS), "fee type (0 TOS, 1 energy, 2 UNO)")
	nonce := fs.Uint64("nonce", 0, "account nonce")
	refHex := fs.String("ref", "", "reference block hash (hex)")
	topo := fs.Uint64("topo", 0, "reference topoheight")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *feeType > math.MaxUint8 {
		return fmt.Errorf("invalid fee type %d", *feeType)
	}

	svc, err := common.service(stderr)
	if err != nil {
		return err
	}
	priv, err := keys.privateKey()
	if err != nil {
		return err
	}
	dest, err := parsePublicKey(*to)
	if err != nil {
		return err
	}

	transfer := tx.Transfer{Destination: dest, Amount: *amount}
	if *assetHex != "" {
		if transfer.Asset, err = parseHex32("asset", *assetHex); err != nil {
			return err
		}
	}
	if *extraHex != "" {
		if transfer.ExtraData, err = hex.DecodeString(*extraHex); err != nil {
			return err
		}
	}

	req := &api.TransferRequest{
		PrivateKey:          priv[:],
		Transfers:           []tx.Transfer{transfer},
		Fee:                 *fee,
		FeeType:             tx.FeeType(*feeType),
		Nonce:               *nonce,
		ReferenceTopoHeight: *topo,
	}
	if *refHex != "" {
		if req.ReferenceHash, err = parseHex32("reference hash", *refHex); err != nil {
			return err
		}
	}

	signed, err := svc.SignTransfer(context.Background(), req)
	if err != nil {
		return err
	}
	return writeYAML(stdout, frameOutput{
		ChainID:   signed.Transaction.ChainID,
		Source:    hex.EncodeToString(signed.Transaction.Source[:]),
		Payload:   hex.EncodeToString(signed.Transaction.Payload),
		Frame:     hex.EncodeToString(signed.Frame),
		Signature: hex.EncodeToString(signed.Signature[:]),
	})
}

type shieldOutput struct {
	Destination    string `yaml:"destination"`
	Amount         uint64 `yaml:"amount"`
	Commitment     string `yaml:"commitment"`
	ReceiverHandle string `yaml:"receiver_handle"`
	Proof          string `yaml:"proof"`
	Valid          bool   `yaml:"valid"`
}

func cmdShield(args []string, stdout, stderr io.Writer) error {
	fs, common := newFlagSet("shield", stderr)
	fs.BoolVar(&common.fixtures, "fixtures", false, "allow -dest-seed (test vectors only)")
	to := fs.String("to", "", "destination (hex or address)")
	destSeed := fs.String("dest-seed", "", "destination seed byte (with -fixtures)")
	amount := fs.Uint64("amount", 0, "amount in atomic units")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, err := common.service(stderr)
	if err != nil {
		return err
	}
	ctx := context.Background()

	var st tx.ShieldTransfer
	if *destSeed != "" {
		seed, err := parseSeedByte(*destSeed)
		if err != nil {
			return err
		}
		sc, err := svc.MakeShieldCrypto(ctx, seed, *amount)
		if err != nil {
			return err
		}
		if st.Destination, err = svc.PublicKey(ctx, seed); err != nil {
			return err
		}
		st.Amount = *amount
		st.Commitment, st.ReceiverHandle, st.Proof = sc.Commitment, sc.ReceiverHandle, sc.Proof
	} else {
		dest, err := parsePublicKey(*to)
		if err != nil {
			return err
		}
		built, _, err := svc.ShieldTransfer(ctx, [32]byte{}, dest, *amount, nil)
		if err != nil {
			return err
		}
		st = *built
	}

	return writeYAML(stdout, shieldOutput{
		Destination:    hex.EncodeToString(st.Destination[:]),
		Amount:         st.Amount,
		Commitment:     hex.EncodeToString(st.Commitment[:]),
		ReceiverHandle: hex.EncodeToString(st.ReceiverHandle[:]),
		Proof:          hex.EncodeToString(st.Proof[:]),
		Valid:          svc.VerifyShieldTransfer(ctx, &st) == nil,
	})
}

type generatorsOutput struct {
	G string `yaml:"g"`
	H string `yaml:"h"`
}

func cmdGenerators(args []string, stdout, stderr io.Writer) error {
	fs, common := newFlagSet("generators", stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	svc, err := common.service(stderr)
	if err != nil {
		return err
	}
	g, h := svc.Generators()
	return writeYAML(stdout, generatorsOutput{G: hex.EncodeToString(g[:]), H: hex.EncodeToString(h[:])})
}
