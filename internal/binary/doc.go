// Package binary finds, downloads and caches the native opennexus binary the
// launcher hands off to.
//
// # Lookup Order
//
// Locator checks for an installed copy first:
//   - ~/.cargo/bin/opennexus (opennexus.exe on Windows)
//   - the first opennexus on PATH
//
// A candidate that resolves to the running launcher is skipped, so a launcher
// installed under the same name never re-executes itself.
//
// # Cache Layout
//
// When no installed copy exists, Provisioner downloads the release asset for
// the host target once and reuses it on every later run:
//
//	<cache-root>/opennexus/bin/<version>/<triple>/<binary-name>
//
// A cached file is trusted as long as it exists and is executable. The asset
// is not verified; it is fetched over HTTPS from the configured release base
// URL.
//
// # Usage
//
//	settings, err := config.Load(ctx, config.LoadOptions{Version: Version})
//	if err != nil {
//	    return err
//	}
//
//	if path, ok := binary.NewLocator(settings).Find(); ok {
//	    return path, nil
//	}
//
//	provisioner, err := binary.NewProvisioner(settings, binary.NewDownloader(settings.Version))
//	if err != nil {
//	    return err
//	}
//	return provisioner.Ensure(ctx)
package binary
