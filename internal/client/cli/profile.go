package cli

import (
	"context"
	"fmt"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/api"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/models"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/nav"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/token"
)

// Profile shows the account, and offers to edit the basic fields.
func (a *App) Profile(ctx context.Context) error {
	if !a.guardApp() {
		return nil
	}
	a.router.SetTab(nav.TabProfile)

	user := a.session.State().User
	rows := [][2]string{
		{"Name", user.FullName},
		{"Email", user.Email},
		{"Phone", user.Phone},
		{"Email verified", yesNo(user.EmailVerified)},
	}
	if tok, ok := a.tokens.Get(); ok {
		if exp, known := token.Expiry(tok); known {
			rows = append(rows, [2]string{"Session expires", exp.Local().Format("2006-01-02 15:04")})
		}
	}
	fmt.Fprintln(a.out, renderCard("Profile", rows))

	answer, err := getSimpleText(a.reader, "Edit profile? (y/N)", a.out)
	if err != nil || answer != "y" {
		return err
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Full name [%s]", user.FullName), a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, fmt.Sprintf("Phone [%s]", user.Phone), a.out)
	if err != nil {
		return err
	}
	if name == "" && phone == "" {
		return nil
	}

	updated, err := a.api.UpdateProfile(ctx, api.ProfileUpdate{FullName: name, Phone: phone})
	if err != nil {
		return err
	}
	a.refreshUser(ctx, updated)
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

// Prefs shows the notification channels, or toggles one:
//
//	prefs                   show all six channels
//	prefs toggle <channel>  flip one channel
func (a *App) Prefs(ctx context.Context, args []string) error {
	if !a.guardApp() {
		return nil
	}
	a.router.SetTab(nav.TabProfile)

	prefs, err := a.api.NotificationPreferences(ctx)
	if err != nil {
		return err
	}

	if len(args) >= 2 && args[0] == "toggle" {
		if !togglePref(prefs, args[1]) {
			fmt.Fprintf(a.out, "Unknown channel: %s\n", args[1])
			return nil
		}
		updated, err := a.api.UpdateNotificationPreferences(ctx, prefs)
		if err != nil {
			return err
		}
		prefs = updated
		fmt.Fprintln(a.out, "Preferences saved.")
	}

	fmt.Fprintln(a.out, renderCard("Notifications", [][2]string{
		{"workouts", onOff(prefs.WorkoutReminders)},
		{"meals", onOff(prefs.MealReminders)},
		{"progress", onOff(prefs.ProgressReports)},
		{"coach", onOff(prefs.CoachMessages)},
		{"devices", onOff(prefs.DeviceAlerts)},
		{"digest", onOff(prefs.EmailDigest)},
	}))
	return nil
}

func togglePref(p *models.NotificationPreferences, channel string) bool {
	switch channel {
	case "workouts":
		p.WorkoutReminders = !p.WorkoutReminders
	case "meals":
		p.MealReminders = !p.MealReminders
	case "progress":
		p.ProgressReports = !p.ProgressReports
	case "coach":
		p.CoachMessages = !p.CoachMessages
	case "devices":
		p.DeviceAlerts = !p.DeviceAlerts
	case "digest":
		p.EmailDigest = !p.EmailDigest
	default:
		return false
	}
	return true
}

// Devices lists linked wearables, or connects a new one:
//
//	devices                     list
//	devices connect <provider>  link a provider (fitbit, garmin, ...)
func (a *App) Devices(ctx context.Context, args []string) error {
	if !a.guardApp() {
		return nil
	}
	a.router.SetTab(nav.TabProfile)

	if len(args) >= 2 && args[0] == "connect" {
		dev, err := a.api.ConnectDevice(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Connected %s (%s).\n", dev.Name, dev.Provider)
		return nil
	}

	devices, err := a.api.Devices(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderTitle("Devices"))
	for _, d := range devices {
		sync := "never"
		if d.LastSyncAt != nil {
			sync = d.LastSyncAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(a.out, "  %s %-20s %-10s last sync: %s\n", checkmark(d.Connected), d.Name, d.Provider, sync)
	}
	if len(devices) == 0 {
		fmt.Fprintln(a.out, "  No devices linked. Try: devices connect fitbit")
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
