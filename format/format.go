// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package format turns transaction fields into the label and value text shown
// on the device screen.
//
// Labels come from a fixed table keyed by data type and field id. Values are
// rendered by a formatter chosen from the data type. Both are written into
// fixed-capacity, NUL-terminated buffers and never overflow them.
package format

import (
	"github.com/blinklabs-io/dhpreview"
	"github.com/blinklabs-io/dhpreview/address"
	"github.com/blinklabs-io/dhpreview/field"
	"github.com/blinklabs-io/dhpreview/printer"
	"github.com/blinklabs-io/dhpreview/status"
)

const (
	notImplementedValue = "[Not implemented]"
	emptyMessageValue   = "<empty msg>"
)

// Blocks per time unit, at one block every 30 seconds
const (
	blocksPerDay    = 2880
	blocksPerHour   = 120
	blocksPerMinute = 2
)

// Label holds the rendered name of a field
type Label [dhpreview.MaxFieldNameLen]byte

// Resolve writes the name of f into the label
func (l *Label) Resolve(f field.Field) {
	ResolveName(f, l[:])
}

func (l *Label) String() string {
	return printer.CString(l[:])
}

// Value holds the rendered value of a field
type Value [dhpreview.MaxFieldLen]byte

// Format writes the value of f into the buffer, see FormatField
func (v *Value) Format(ctx *Context, f field.Field) error {
	return FormatField(ctx, f, v[:])
}

func (v *Value) String() string {
	return printer.CString(v[:])
}

type formatterFunc func(ctx *Context, f field.Field, dst []byte) error

// FormatField clears dst and writes the display value of f into it. Data types
// without a formatter show "[Not implemented]". An empty result is replaced by
// a single space so that the screen never shows a blank value. On error, dst
// holds that single space and the error is returned
func FormatField(ctx *Context, f field.Field, dst []byte) error {
	if len(dst) < 2 {
		return status.New(status.NotEnoughData, "format field")
	}
	clear(dst)
	var err error
	if formatter := formatterFor(f.DataType); formatter != nil {
		if err = formatter(ctx, f, dst); err != nil {
			clear(dst)
		}
	} else {
		b := printer.NewBuilder(dst)
		b.WriteString(notImplementedValue)
	}
	if dst[0] == 0 {
		dst[0] = ' '
	}
	return err
}

func formatterFor(dataType field.DataType) formatterFunc {
	switch dataType {
	case field.TypeInt8:
		return formatInt8
	case field.TypeUint8:
		return formatUint8
	case field.TypeUint8Addition, field.TypeUint8Deletion:
		return formatUint8Count
	case field.TypeInt16:
		return formatInt16
	case field.TypeUint16:
		return formatUint16
	case field.TypeUint32:
		return formatUint32
	case field.TypeUint64:
		return formatUint64
	case field.TypeHash256, field.TypePublicKey:
		return formatHash
	case field.TypeAddress:
		return formatAddress
	case field.TypeMosaicCurrency:
		return formatMosaic
	case field.TypeDHP:
		return formatDHP
	case field.TypeMessage:
		return formatMessage
	case field.TypeHexMessage:
		return formatHexMessage
	case field.TypeString:
		return formatString
	default:
		return nil
	}
}

func formatInt8(_ *Context, f field.Field, dst []byte) error {
	value, err := f.Int8()
	if err != nil {
		return err
	}
	b := printer.NewBuilder(dst)
	switch {
	case value > 0:
		b.WriteString("Add ")
		b.WriteInt(int64(value))
		b.WriteString(" address(es)")
	case value < 0:
		b.WriteString("Remove ")
		b.WriteInt(-int64(value))
		b.WriteString(" address(es)")
	default:
		b.WriteString("Not change")
	}
	return nil
}

func formatInt16(_ *Context, f field.Field, dst []byte) error {
	value, err := f.Int16()
	if err != nil {
		return err
	}
	b := printer.NewBuilder(dst)
	switch {
	case value > 0:
		b.WriteString("Increase ")
		b.WriteInt(int64(value))
		b.WriteString(" byte(s)")
	case value < 0:
		b.WriteString("Descrease ")
		b.WriteInt(-int64(value))
		b.WriteString(" byte(s)")
	default:
		b.WriteString("Not change")
	}
	return nil
}

func yesNo(set bool) string {
	if set {
		return "Yes"
	}
	return "No"
}

func formatUint8(_ *Context, f field.Field, dst []byte) error {
	value, err := f.Uint8()
	if err != nil {
		return err
	}
	b := printer.NewBuilder(dst)
	switch f.ID {
	case field.Uint8MosaicCount:
		b.WriteString("Found ")
		b.WriteUint(uint64(value))
	case field.Uint8MessageType:
		switch value {
		case field.MessageTypePlain:
			b.WriteString("Plain text")
		case field.MessageTypeEncrypted:
			b.WriteString("Encrypted text")
		case field.MessageTypeHarvestingDelegation:
			b.WriteString("Persistent harvesting delegation")
		}
	case field.Uint8AliasType:
		switch value {
		case 0:
			b.WriteString("Unlink address")
		case 1:
			b.WriteString("Link address")
		}
	case field.Uint8KeyLinkType:
		switch value {
		case 0:
			b.WriteString("Unlink")
		case 1:
			b.WriteString("Link")
		}
	case field.Uint8NamespaceRegType:
		switch value {
		case 0:
			b.WriteString("Root namespace")
		case 1:
			b.WriteString("Sub namespace")
		}
	case field.Uint8SupplyChangeAction:
		switch value {
		case 0:
			b.WriteString("Decrease")
		case 1:
			b.WriteString("Increase")
		}
	case field.Uint8SupplyMutableFlag:
		b.WriteString(yesNo(value&0x01 != 0))
	case field.Uint8TransferableFlag:
		b.WriteString(yesNo(value&0x02 != 0))
	case field.Uint8RestrictableFlag:
		b.WriteString(yesNo(value&0x04 != 0))
	default:
		b.WriteUint(uint64(value))
	}
	return nil
}

// formatUint8Count renders the number of restriction entries added or deleted
func formatUint8Count(_ *Context, f field.Field, dst []byte) error {
	value, err := f.Uint8()
	if err != nil {
		return err
	}
	b := printer.NewBuilder(dst)
	if value == 0 {
		b.WriteString("Not change")
		return nil
	}
	var unit string
	switch f.ID {
	case field.Uint8AddressRestrictionCount:
		unit = " address(es)"
	case field.Uint8MosaicRestrictionCount:
		unit = " mosaic(s)"
	case field.Uint8OperationRestrictCount:
		unit = " operation(s)"
	default:
		return nil
	}
	b.WriteUint(uint64(value))
	b.WriteString(unit)
	return nil
}

// Account restriction flags
const (
	restrictionFlagAddress         uint16 = 0x0001
	restrictionFlagMosaicId        uint16 = 0x0002
	restrictionFlagTransactionType uint16 = 0x0004
	restrictionFlagOutgoing        uint16 = 0x4000
	restrictionFlagBlock           uint16 = 0x8000
)

func formatUint16(_ *Context, f field.Field, dst []byte) error {
	value, err := f.Uint16()
	if err != nil {
		return err
	}
	b := printer.NewBuilder(dst)
	switch f.ID {
	case field.Uint16RestrictionType:
		switch {
		case value&restrictionFlagAddress != 0:
			b.WriteString("Address")
		case value&restrictionFlagMosaicId != 0:
			b.WriteString("Mosaic")
		case value&restrictionFlagTransactionType != 0:
			b.WriteString("Transaction Type")
		}
	case field.Uint16RestrictionDirection:
		if value&restrictionFlagOutgoing != 0 {
			b.WriteString("Outgoing")
		} else {
			b.WriteString("Imcoming")
		}
	case field.Uint16RestrictionOperation:
		if value&restrictionFlagBlock != 0 {
			b.WriteString("Block")
		} else {
			b.WriteString("Allow")
		}
	default:
		b.WriteString(TransactionTypeName(value))
	}
	return nil
}

func formatUint32(_ *Context, f field.Field, dst []byte) error {
	if f.ID != field.Uint32VotingStartEpoch && f.ID != field.Uint32VotingEndEpoch {
		return nil
	}
	value, err := f.Uint32()
	if err != nil {
		return err
	}
	b := printer.NewBuilder(dst)
	b.WriteUint(uint64(value))
	return nil
}

func formatUint64(_ *Context, f field.Field, dst []byte) error {
	switch f.ID {
	case field.Uint64Duration:
		duration, err := f.Uint64()
		if err != nil {
			return err
		}
		b := printer.NewBuilder(dst)
		if duration == 0 {
			b.WriteString("Unlimited")
			return nil
		}
		b.WriteUint(duration / blocksPerDay)
		b.WriteString("d ")
		b.WriteUint((duration % blocksPerDay) / blocksPerHour)
		b.WriteString("h ")
		b.WriteUint((duration % blocksPerHour) / blocksPerMinute)
		b.WriteString("m")
		return nil
	case field.Uint64SupplyDelta:
		amount, err := f.Uint64()
		if err != nil {
			return err
		}
		_, err = printer.Amount(dst, amount, 0, "")
		return err
	default:
		// Ids are little-endian, show them most significant byte first
		_, err := printer.Hex(dst, f.Bytes(), true)
		return err
	}
}

func formatHash(_ *Context, f field.Field, dst []byte) error {
	_, err := printer.Hex(dst, f.Bytes(), false)
	return err
}

func formatAddress(_ *Context, f field.Field, dst []byte) error {
	_, err := address.Encode(dst, f.Bytes())
	return err
}

func formatMosaic(ctx *Context, f field.Field, dst []byte) error {
	mosaic, err := f.Mosaic()
	if err != nil {
		return err
	}
	if mosaic.MosaicId == ctx.CurrencyMosaicId() ||
		f.ID == field.MosaicLockQuantity {
		_, err = printer.Amount(
			dst,
			mosaic.Amount,
			dhpreview.CurrencyDivisibility,
			dhpreview.CurrencyTicker,
		)
		return err
	}
	_, err = printer.Mosaic(dst, mosaic.Amount, mosaic.MosaicId, dhpreview.MicroTicker)
	return err
}

func formatDHP(_ *Context, f field.Field, dst []byte) error {
	amount, err := f.Uint64()
	if err != nil {
		return err
	}
	_, err = printer.Amount(
		dst,
		amount,
		dhpreview.CurrencyDivisibility,
		dhpreview.CurrencyTicker,
	)
	return err
}

func formatMessage(_ *Context, f field.Field, dst []byte) error {
	data := f.Bytes()
	if len(data) == 0 {
		b := printer.NewBuilder(dst)
		b.WriteString(emptyMessageValue)
		return nil
	}
	_, err := printer.ASCII(dst, data[:min(len(data), len(dst)-1)])
	return err
}

func formatHexMessage(_ *Context, f field.Field, dst []byte) error {
	data := f.Bytes()
	if len(data) == 0 {
		return nil
	}
	_, err := printer.HexToASCII(dst, data[:min(len(data), len(dst)/2-1)])
	return err
}

func formatString(_ *Context, f field.Field, dst []byte) error {
	switch f.ID {
	case field.UnknownMosaic:
		b := printer.NewBuilder(dst)
		b.WriteString("Divisibility and levy cannot be shown")
		return nil
	case field.StrRecipientAddress:
		b := printer.NewBuilder(dst)
		b.WriteString("alias to a namespace")
		return nil
	}
	data := f.Bytes()
	if len(data) == 0 {
		return nil
	}
	_, err := printer.ASCII(dst, data[:min(len(data), len(dst)-1)])
	return err
}
