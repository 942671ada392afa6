// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/mova-mz/mova-core/pkg/adapter/config"
	"github.com/mova-mz/mova-core/pkg/adapter/stream/kafka"
	"github.com/mova-mz/mova-core/pkg/core/event"
	"github.com/spf13/cobra"
)

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Publish one change-event envelope on the stream",
	Long: `Publish one change-event envelope on the stream. The Kafka
connection information are read from the config file and the topic
name is derived from the configured topic prefix and the --table flag.
The --new flag carries the changed row contents as JSON; updates may
also carry the previous contents through the --old flag.`,
	RunE: emitEvent,
	Args: cobra.NoArgs,
}

var (
	emitTable string
	emitOp    string
	emitNew   string
	emitOld   string
)

// buildEnvelope assembles a change-event envelope from the raw CLI
// flag values, rejecting unknown operations and malformed row JSON.
func buildEnvelope(
	table, op, newRow, oldRow string,
) (event.Envelope, error) {
	if table == "" {
		return event.Envelope{}, fmt.Errorf("missing table name")
	}
	o, err := event.ParseOp(op)
	if err != nil {
		return event.Envelope{}, fmt.Errorf(
			"parsing %q operation: %w", op, err,
		)
	}
	if !json.Valid([]byte(newRow)) {
		return event.Envelope{}, fmt.Errorf("new row is not valid JSON")
	}
	e := event.Envelope{
		Table: table, Op: o, New: json.RawMessage(newRow),
	}
	if oldRow != "" {
		if !json.Valid([]byte(oldRow)) {
			return event.Envelope{}, fmt.Errorf(
				"old row is not valid JSON",
			)
		}
		e.Old = json.RawMessage(oldRow)
	}
	return e, nil
}

func emitEvent(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.LoadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("loading configs: %w", err)
	}
	e, err := buildEnvelope(emitTable, emitOp, emitNew, emitOld)
	if err != nil {
		return fmt.Errorf("building envelope: %w", err)
	}
	w := kafka.NewWriter(c.Kafka.Brokers, c.Kafka.TopicPrefix, e.Table)
	defer w.Close()
	if err := kafka.PublishEnvelope(ctx, w, e); err != nil {
		return fmt.Errorf("publishing envelope: %w", err)
	}
	return nil
}

func init() {
	emitCmd.Flags().StringVar(
		&emitTable, "table", "", "changed table name",
	)
	emitCmd.Flags().StringVar(
		&emitOp, "op", "", "change operation (insert or update)",
	)
	emitCmd.Flags().StringVar(
		&emitNew, "new", "", "new row contents as JSON",
	)
	emitCmd.Flags().StringVar(
		&emitOld, "old", "", "old row contents as JSON (updates only)",
	)
	for _, f := range []string{"table", "op", "new"} {
		_ = emitCmd.MarkFlagRequired(f)
	}
	streamCmd.AddCommand(emitCmd)
}
