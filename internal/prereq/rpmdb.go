package prereq

import (
	"context"
	"fmt"

	rpmdb "github.com/erikvarga/go-rpmdb/pkg"
	"github.com/samber/lo"
)

// RpmDbPaths lists the locations rpm keeps its package database in, across
// the BerkeleyDB, NDB and SQLite backends.
var RpmDbPaths = []string{
	"/var/lib/rpm/rpmdb.sqlite",
	"/var/lib/rpm/Packages.db",
	"/var/lib/rpm/Packages",
	"/usr/lib/sysimage/rpm/rpmdb.sqlite",
	"/usr/lib/sysimage/rpm/Packages.db",
	"/usr/lib/sysimage/rpm/Packages",
	"/usr/share/rpm/rpmdb.sqlite",
	"/usr/share/rpm/Packages.db",
	"/usr/share/rpm/Packages",
}

// listRpmPackages returns the names of all packages in the rpm database at path.
func listRpmPackages(path string) ([]string, error) {
	db, err := rpmdb.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	pkgs, err := db.ListPackagesWithContext(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	return lo.Map(pkgs, func(p *rpmdb.PackageInfo, _ int) string {
		return p.Name
	}), nil
}
