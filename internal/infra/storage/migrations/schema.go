package migrations

// statements схема базы в порядке применения
// Все операторы идемпотентны, повторный запуск ничего не меняет
var statements = []string{
	// btree_gist нужен для ограничения исключения по (table_id, интервал)
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,

	`CREATE TABLE IF NOT EXISTS restaurant_tables (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		area          TEXT NOT NULL CHECK (area IN ('bar', 'inside', 'outside')),
		min_capacity  INTEGER NOT NULL CHECK (min_capacity >= 1),
		max_capacity  INTEGER NOT NULL,
		is_adjustable BOOLEAN NOT NULL DEFAULT FALSE,
		position_x    DOUBLE PRECISION NOT NULL DEFAULT 0,
		position_y    DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (min_capacity <= max_capacity)
	)`,

	`CREATE TABLE IF NOT EXISTS reservations (
		id               UUID PRIMARY KEY,
		customer_id      TEXT NOT NULL,
		customer_name    TEXT NOT NULL,
		customer_phone   TEXT NOT NULL,
		customer_email   TEXT,
		customer_notes   TEXT,
		customer_vip     BOOLEAN NOT NULL DEFAULT FALSE,
		party_size       INTEGER NOT NULL CHECK (party_size > 0),
		reservation_date DATE NOT NULL,
		start_time       TIME NOT NULL,
		end_time         TIME NOT NULL,
		status           TEXT NOT NULL DEFAULT 'confirmed'
			CHECK (status IN ('confirmed', 'seated', 'completed', 'cancelled', 'no-show')),
		special_requests TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (start_time < end_time)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reservations_date ON reservations (reservation_date, start_time)`,

	`CREATE INDEX IF NOT EXISTS idx_reservations_customer_phone ON reservations (customer_phone)`,

	// Окно и флаг отмены продублированы из reservations, чтобы база сама
	// не допускала двух неотмененных пересекающихся бронирований одного стола
	`CREATE TABLE IF NOT EXISTS reservation_tables (
		reservation_id   UUID NOT NULL REFERENCES reservations (id) ON DELETE CASCADE,
		table_id         TEXT NOT NULL REFERENCES restaurant_tables (id),
		ordinal          INTEGER NOT NULL DEFAULT 0,
		reservation_date DATE NOT NULL,
		start_time       TIME NOT NULL,
		end_time         TIME NOT NULL,
		is_cancelled     BOOLEAN NOT NULL DEFAULT FALSE,
		PRIMARY KEY (reservation_id, table_id),
		CONSTRAINT reservation_tables_no_overlap EXCLUDE USING gist (
			table_id WITH =,
			tsrange(reservation_date + start_time, reservation_date + end_time, '[)') WITH &&
		) WHERE (NOT is_cancelled)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reservation_tables_table ON reservation_tables (table_id)`,

	`CREATE TABLE IF NOT EXISTS restaurant_config (
		id                   TEXT PRIMARY KEY,
		name                 TEXT NOT NULL,
		time_slot_duration   INTEGER NOT NULL CHECK (time_slot_duration > 0),
		reservation_duration INTEGER NOT NULL CHECK (reservation_duration > 0),
		advance_booking_days INTEGER NOT NULL DEFAULT 90 CHECK (advance_booking_days >= 0),
		created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS restaurant_working_hours (
		config_id  TEXT NOT NULL REFERENCES restaurant_config (id) ON DELETE CASCADE,
		weekday    SMALLINT NOT NULL CHECK (weekday BETWEEN 0 AND 6),
		is_open    BOOLEAN NOT NULL,
		open_time  TIME,
		close_time TIME,
		PRIMARY KEY (config_id, weekday)
	)`,
}
