package database

import "testing"

func TestRunMigrationsIsIdempotent(t *testing.T) {
	conn, err := Open(Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer conn.Close()

	m := NewMigrationManager(conn)
	if err := m.RunMigrations(); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := m.RunMigrations(); err != nil {
		t.Fatalf("second run: %v", err)
	}

	pending, err := m.Pending()
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 0 {
		t.Errorf("pending after run = %+v", pending)
	}

	applied, err := m.GetAppliedMigrations()
	if err != nil {
		t.Fatal(err)
	}
	if !applied[1] {
		t.Errorf("migration 1 not recorded: %v", applied)
	}

	for _, table := range []string{"competitions", "matches", "players", "heatmap_records", "heat_zones", "import_tasks"} {
		var name string
		err := conn.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestLoadMigrationsOrdersByVersion(t *testing.T) {
	conn, err := Open(Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer conn.Close()

	migrations, err := NewMigrationManager(conn).LoadMigrations()
	if err != nil {
		t.Fatal(err)
	}
	if len(migrations) == 0 || migrations[0].Version != 1 || migrations[0].Name != "001_init_schema" {
		t.Fatalf("migrations = %+v", migrations)
	}
	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version <= migrations[i-1].Version {
			t.Errorf("out of order: %d after %d", migrations[i].Version, migrations[i-1].Version)
		}
	}
}
