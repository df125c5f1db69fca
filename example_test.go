package librarylog_test

import (
	"os"

	"github.com/Station-Manager/librarylog"
)

func Example() {
	con := &librarylog.StdConsole{Out: os.Stdout, Err: os.Stdout, LevelTags: true}
	provider := librarylog.NewProvider(librarylog.WithConsole(con))
	provider.ConfigureConsole(librarylog.ConsoleOut{Style: librarylog.Ptr(false)})
	provider.ConfigureFiltering(librarylog.FilteringConfig{Dev: librarylog.Ptr(true)})

	log := provider.GetLogger().Named("Project", 42)
	log.WarnDev("sourcemap missing", librarylog.Fields{"file": "app.js"})
	log.Debug("not shown")
	log.ErrorPublic("could not load project")
	// Output:
	// WARN Project#42 sourcemap missing file=app.js
	// ERROR Project#42 could not load project
}

func ExampleDowngrade() {
	con := &librarylog.StdConsole{Out: os.Stdout, Err: os.Stdout, LevelTags: true}
	provider := librarylog.NewProvider(librarylog.WithConsole(con))
	provider.ConfigureConsole(librarylog.ConsoleOut{Style: librarylog.Ptr(false)})
	provider.ConfigureFiltering(librarylog.FilteringConfig{Internal: librarylog.Ptr(true)})

	public := provider.GetLogger().Named("Parser").Downgrade().Public()
	public.Warn("file skipped")
	public.Debug("token stream")
	// Output:
	// WARN Parser file skipped
	// WARN Parser (public "debug" filtered out) token stream
}
