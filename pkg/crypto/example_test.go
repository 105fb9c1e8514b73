package crypto_test

import (
	"fmt"

	"github.com/tos-network/tos-signer/pkg/crypto"
)

func ExampleSign() {
	kp, err := crypto.DeriveKeyPairFromByte(0x42)
	if err != nil {
		panic(err)
	}

	msg := []byte("Hello, world!")
	sig, err := crypto.Sign(nil, kp, msg)
	if err != nil {
		panic(err)
	}

	fmt.Println(crypto.Verify(kp.Public(), msg, sig))
	// Output: true
}

func ExampleNewShieldOutput() {
	recipient, err := crypto.DeriveKeyPairFromByte(0x02)
	if err != nil {
		panic(err)
	}

	out, _, err := crypto.NewShieldOutput(nil, recipient.Public(), 500)
	if err != nil {
		panic(err)
	}

	fmt.Println(out.Verify(recipient.Public(), 500) == nil)
	fmt.Println(out.Verify(recipient.Public(), 501) == nil)
	// Output:
	// true
	// false
}
