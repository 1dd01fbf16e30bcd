package emitter

import (
	"strings"

	"github.com/formsmith/formsmith/compiler/ir"
)

// Utilities emits the auxiliary declarations other fragments lean on:
// the password-strength classifier for signup forms and the social
// sign-in wrapper when OAuth providers are present. Returns "" when
// nothing is needed.
func Utilities(c ir.Classification, hasOAuth bool) string {
	var parts []string
	if c.IsSignup {
		parts = append(parts, passwordStrengthFn)
	}
	if hasOAuth {
		parts = append(parts, socialSignInFn)
	}
	return strings.Join(parts, "\n")
}

// Length contributes up to two points (8 and 12 characters) and each
// character class one, for a 0-6 score mapped onto four tiers.
const passwordStrengthFn = `function passwordStrength(value: string): "weak" | "fair" | "good" | "strong" {
  let score = 0
  if (value.length >= 8) score++
  if (value.length >= 12) score++
  if (/[a-z]/.test(value)) score++
  if (/[A-Z]/.test(value)) score++
  if (/[0-9]/.test(value)) score++
  if (/[^a-zA-Z0-9]/.test(value)) score++
  if (score <= 2) return "weak"
  if (score === 3) return "fair"
  if (score === 4) return "good"
  return "strong"
}
`

const socialSignInFn = `async function signInWithProvider(provider: string) {
  try {
    await authClient.signIn.social({ provider, callbackURL: "/" })
  } catch (error) {
    toast.error(error instanceof Error ? error.message : "Unable to start social sign-in")
  }
}
`
