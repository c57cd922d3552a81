package cli

import (
	"context"
	"fmt"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/nav"
	"github.com/KingTechFoundation/fitlife-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the session
// subscriber reroutes the shell to app or onboarding depending on
// user.OnboardingCompleted. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	a.router.GoTo(nav.ScreenLogin)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		return err
	}

	st := a.session.State()
	fmt.Fprintf(a.out, "Logged in as %s.\n", st.User.Email)
	if a.router.Screen() == nav.ScreenOnboarding {
		fmt.Fprintln(a.out, "Complete your health profile with 'onboarding' to unlock the app.")
	}
	a.saveUserSnapshot(ctx, st.User)
	return nil
}

// Signup collects the account form and creates the account. No credential
// is stored: the flow continues on the verify-email screen, carrying the
// submitted address forward, and ends with an explicit login.
func (a *App) Signup(ctx context.Context) error {
	a.router.GoTo(nav.ScreenSignup)

	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Signup(ctx, fullName, email, phone, string(password)); err != nil {
		return err
	}

	a.router.StartVerify(email)
	fmt.Fprintf(a.out, "Account created. We sent a verification code to %s. Run 'verify' when you have it.\n", email)
	return nil
}

// Verify confirms the email address with the code from the verification
// mail, then returns to the login screen.
func (a *App) Verify(ctx context.Context) error {
	email := a.router.VerifyEmail()
	if email == "" {
		var err error
		email, err = getSimpleText(a.reader, "Enter email to verify", a.out)
		if err != nil {
			return err
		}
	}

	code, err := getSimpleText(a.reader, fmt.Sprintf("Enter verification code for %s (empty to resend)", email), a.out)
	if err != nil {
		return err
	}
	if code == "" {
		if err := a.api.ResendVerification(ctx, email); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Verification code resent.")
		return nil
	}

	if err := a.api.VerifyEmail(ctx, email, code); err != nil {
		return err
	}

	a.router.GoTo(nav.ScreenLogin)
	fmt.Fprintln(a.out, "Email verified. You can now log in.")
	return nil
}

// Logout ends the session and unconditionally returns to the home screen.
// It cannot fail: local state is simply dropped.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	if a.cache != nil {
		if err := a.cache.Clear(ctx); err != nil {
			a.log.Warn(ctx, "clearing snapshot cache", "error", err)
		}
	}
	a.router.ForceHome()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
