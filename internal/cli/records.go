package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/snipsync/snipsync/internal/iocli"
	"github.com/snipsync/snipsync/internal/records"
)

// RunAdd creates a record from command arguments.
func RunAdd(ctx context.Context, io iocli.IO, args []string, svc records.Service) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: snipsync add <kind> <content>")
	}
	kind := args[0]
	payload := strings.Join(args[1:], " ")

	record, err := svc.Save(ctx, "", kind, []byte(payload))
	if err != nil {
		return err
	}

	io.Printf("Created %s %s\n", record.Kind, record.ID)
	io.Println("The record will be uploaded on the next sync.")
	return nil
}

// RunList lists records of one kind.
func RunList(ctx context.Context, io iocli.IO, args []string, svc records.Service) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: snipsync list <kind>")
	}

	list, err := svc.List(ctx, args[0])
	if err != nil {
		return err
	}

	if len(list) == 0 {
		io.Printf("No %s records found.\n", args[0])
		return nil
	}

	for _, record := range list {
		printRecord(io, record)
		io.Printf("    %s\n", preview(record.Payload, 60))
	}
	io.Println()
	io.Printf("%d record(s)\n", len(list))
	return nil
}

// RunGet shows one record in full.
func RunGet(ctx context.Context, io iocli.IO, args []string, svc records.Service) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: snipsync get <id>")
	}

	record, err := svc.Get(ctx, args[0])
	if err != nil {
		return err
	}

	printRecord(io, record)
	io.Println()
	io.Println(string(record.Payload))
	return nil
}

// RunDelete soft-deletes a record; the deletion propagates on the next sync.
func RunDelete(ctx context.Context, io iocli.IO, args []string, svc records.Service) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: snipsync delete <id>")
	}

	if err := svc.Delete(ctx, args[0]); err != nil {
		return err
	}

	io.Printf("Deleted %s\n", args[0])
	io.Println("The deletion will propagate on the next sync.")
	return nil
}
