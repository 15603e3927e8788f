package log

import (
	"context"
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback outside of a bump run:
// configuration problems and wrapped build processes
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
	out io.Writer
}

// 🎯 NewUserLoggerTo creates a new user logger writing to out
func NewUserLoggerTo(ctx context.Context, out io.Writer) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
		out: out,
	}
}

// 📊 LogStateChange logs a change to the overall state
func (u *UserLogger) LogStateChange(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).WithWriter(u.out)
	printer.Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).WithWriter(u.out).Println(description)
		u.log.Info().Msg(description)
		return
	}

	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(u.out).Println(description)
		pterm.Error.WithWriter(u.out).Println(err)
		u.log.Error().Err(err).Msg(description)
		return
	}

	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(u.out).Println(description)
	u.log.Warn().Msg(description)
}

// 🚀 LogProcess logs the start and end of a wrapped process
func (u *UserLogger) LogProcess(command string, exitCode int, err error) {
	switch {
	case err != nil:
		pterm.Error.WithPrefix(pterm.Prefix{Text: "🚀"}).WithWriter(u.out).Printfln("%s could not be started", command)
		pterm.Error.WithWriter(u.out).Println(err)
		u.log.Error().Err(err).Str("command", command).Msg("process failed to start")
	case exitCode == 0:
		pterm.Success.WithPrefix(pterm.Prefix{Text: "🚀"}).WithWriter(u.out).Printfln("%s finished", command)
		u.log.Info().Str("command", command).Msg("process finished")
	default:
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "🚀"}).WithWriter(u.out).Printfln("%s exited with code %d", command, exitCode)
		u.log.Warn().Str("command", command).Int("exit_code", exitCode).Msg("process exited")
	}
}
