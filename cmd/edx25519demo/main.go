package main

import (
	"crypto/rand"
	"fmt"

	"github.com/zoobc/curve25519x/ed25519"
	"github.com/zoobc/curve25519x/x25519"
)

func rng(n int) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}

func hex(b []byte) string { return fmt.Sprintf("%x", b) }

func testSign(fuckup bool) {
	fmt.Println("\nTEST SIGNING: should validate =", !fuckup)

	var seed ed25519.Seed
	copy(seed[:], rng(ed25519.SeedSize))
	fmt.Println("  seed       :", hex(seed[:]))

	kp := ed25519.NewKeyPairFromSeed(seed)
	fmt.Println("  secret     :", hex(kp.SecretKey[:]))
	fmt.Println("  public     :", hex(kp.PublicKey[:]))

	message := rng(16)
	fmt.Println("  message    :", hex(message))

	sig, err := ed25519.Sign(kp.SecretKey, message, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println("  signature  :", hex(sig[:]))

	if fuckup {
		r := rng(2)
		if r[1] == 0 {
			r[1] = 1
		}
		message[int(r[0])%len(message)] += r[1]
		fmt.Println("  msg-fucked :", hex(message))
	}

	err = ed25519.Verify(kp.PublicKey, message, sig)
	fmt.Println("  valid?     :", err == nil)
	fmt.Println("  test passed:", (err == nil) != fuckup)
}

func testX25519() {
	fmt.Println("\nTEST X25519 DIFFIE-HELLMAN")

	a, err := x25519.GenerateKeyPair(nil)
	if err != nil {
		panic(err)
	}
	b, err := x25519.GenerateKeyPair(nil)
	if err != nil {
		panic(err)
	}

	sharedA, err := x25519.DH(b.PublicKey, a.SecretKey)
	if err != nil {
		panic(err)
	}
	sharedB, err := x25519.DH(a.PublicKey, b.SecretKey)
	if err != nil {
		panic(err)
	}

	fmt.Println("  shared (a->b):", hex(sharedA[:]))
	fmt.Println("  shared (b->a):", hex(sharedB[:]))
	fmt.Println("  match?       :", sharedA == sharedB)
}

func main() {
	for i := 0; i < 5; i++ {
		testSign(false)
		testSign(true)
	}
	testX25519()
}
