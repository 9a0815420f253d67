package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
)

func main() {
	fmt.Println("Our Kidney - JWT Secret Generator")
	fmt.Println("=================================")
	fmt.Println()

	secret := make([]byte, 48)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("Failed to generate secret: %v", err)
	}

	fmt.Println("Add this to your .env file:")
	fmt.Println("----------------------------")
	fmt.Printf("JWT_SECRET=%s\n", base64.StdEncoding.EncodeToString(secret))
	fmt.Println()
	fmt.Println("SECURITY WARNING:")
	fmt.Println("   - Keep this secret SECRET and SECURE")
	fmt.Println("   - Never commit this secret to version control")
	fmt.Println("   - Rotating it invalidates every active admin session")
	fmt.Println("   - Use different secrets for development/staging/production")
	fmt.Println()
}
