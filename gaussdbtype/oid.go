package gaussdbtype

// GaussDB type oids. GaussDB keeps the PostgreSQL catalog numbering for its
// built-in types.
const (
	BoolOID                = 16
	ByteaOID               = 17
	QCharOID               = 18
	NameOID                = 19
	Int8OID                = 20
	Int2OID                = 21
	Int4OID                = 23
	TextOID                = 25
	OIDOID                 = 26
	JSONOID                = 114
	JSONArrayOID           = 199
	CIDROID                = 650
	CIDRArrayOID           = 651
	Float4OID              = 700
	Float8OID              = 701
	Macaddr8OID            = 774
	Macaddr8ArrayOID       = 775
	MoneyOID               = 790
	MoneyArrayOID          = 791
	MacaddrOID             = 829
	InetOID                = 869
	BoolArrayOID           = 1000
	ByteaArrayOID          = 1001
	QCharArrayOID          = 1002
	NameArrayOID           = 1003
	Int2ArrayOID           = 1005
	Int4ArrayOID           = 1007
	TextArrayOID           = 1009
	BPCharArrayOID         = 1014
	VarcharArrayOID        = 1015
	Int8ArrayOID           = 1016
	Float4ArrayOID         = 1021
	Float8ArrayOID         = 1022
	OIDArrayOID            = 1028
	MacaddrArrayOID        = 1040
	InetArrayOID           = 1041
	BPCharOID              = 1042
	VarcharOID             = 1043
	DateOID                = 1082
	TimeOID                = 1083
	TimestampOID           = 1114
	TimestampArrayOID      = 1115
	DateArrayOID           = 1182
	TimeArrayOID           = 1183
	TimestamptzOID         = 1184
	TimestamptzArrayOID    = 1185
	IntervalOID            = 1186
	IntervalArrayOID       = 1187
	NumericArrayOID        = 1231
	NumericOID             = 1700
	UUIDOID                = 2950
	UUIDArrayOID           = 2951
	JSONBOID               = 3802
	JSONBArrayOID          = 3807
	Int4rangeOID           = 3904
	Int4rangeArrayOID      = 3905
	NumrangeOID            = 3906
	NumrangeArrayOID       = 3907
	TsrangeOID             = 3908
	TsrangeArrayOID        = 3909
	TstzrangeOID           = 3910
	TstzrangeArrayOID      = 3911
	DaterangeOID           = 3912
	DaterangeArrayOID      = 3913
	Int8rangeOID           = 3926
	Int8rangeArrayOID      = 3927
	Int4multirangeOID      = 4451
	NummultirangeOID       = 4532
	TsmultirangeOID        = 4533
	TstzmultirangeOID      = 4534
	DatemultirangeOID      = 4535
	Int8multirangeOID      = 4536
	Int4multirangeArrayOID = 6150
	NummultirangeArrayOID  = 6151
	TsmultirangeArrayOID   = 6152
	TstzmultirangeArrayOID = 6153
	DatemultirangeArrayOID = 6155
	Int8multirangeArrayOID = 6157
)

// BuiltinType describes a type whose oids are fixed and need no catalog query.
type BuiltinType struct {
	Name     string
	OID      uint32
	ArrayOID uint32

	// MinServerVersion is the first server version that ships the type. Empty
	// means the type has always existed.
	MinServerVersion string
}

// Metadata returns the resolved metadata for the type.
func (bt BuiltinType) Metadata() TypeMetadata {
	return NewTypeMetadata(bt.OID, bt.ArrayOID)
}

// builtinTypes is filled once at package initialization and never written
// afterwards.
var builtinTypes = func() map[string]BuiltinType {
	types := []BuiltinType{
		{Name: "bool", OID: BoolOID, ArrayOID: BoolArrayOID},
		{Name: "bytea", OID: ByteaOID, ArrayOID: ByteaArrayOID},
		{Name: "char", OID: QCharOID, ArrayOID: QCharArrayOID},
		{Name: "name", OID: NameOID, ArrayOID: NameArrayOID},
		{Name: "int8", OID: Int8OID, ArrayOID: Int8ArrayOID},
		{Name: "int2", OID: Int2OID, ArrayOID: Int2ArrayOID},
		{Name: "int4", OID: Int4OID, ArrayOID: Int4ArrayOID},
		{Name: "text", OID: TextOID, ArrayOID: TextArrayOID},
		{Name: "oid", OID: OIDOID, ArrayOID: OIDArrayOID},
		{Name: "json", OID: JSONOID, ArrayOID: JSONArrayOID},
		{Name: "cidr", OID: CIDROID, ArrayOID: CIDRArrayOID},
		{Name: "float4", OID: Float4OID, ArrayOID: Float4ArrayOID},
		{Name: "float8", OID: Float8OID, ArrayOID: Float8ArrayOID},
		{Name: "macaddr8", OID: Macaddr8OID, ArrayOID: Macaddr8ArrayOID},
		{Name: "money", OID: MoneyOID, ArrayOID: MoneyArrayOID},
		{Name: "macaddr", OID: MacaddrOID, ArrayOID: MacaddrArrayOID},
		{Name: "inet", OID: InetOID, ArrayOID: InetArrayOID},
		{Name: "bpchar", OID: BPCharOID, ArrayOID: BPCharArrayOID},
		{Name: "varchar", OID: VarcharOID, ArrayOID: VarcharArrayOID},
		{Name: "date", OID: DateOID, ArrayOID: DateArrayOID},
		{Name: "time", OID: TimeOID, ArrayOID: TimeArrayOID},
		{Name: "timestamp", OID: TimestampOID, ArrayOID: TimestampArrayOID},
		{Name: "timestamptz", OID: TimestamptzOID, ArrayOID: TimestamptzArrayOID},
		{Name: "interval", OID: IntervalOID, ArrayOID: IntervalArrayOID},
		{Name: "numeric", OID: NumericOID, ArrayOID: NumericArrayOID},
		{Name: "uuid", OID: UUIDOID, ArrayOID: UUIDArrayOID},
		{Name: "jsonb", OID: JSONBOID, ArrayOID: JSONBArrayOID},
		{Name: "int4range", OID: Int4rangeOID, ArrayOID: Int4rangeArrayOID},
		{Name: "numrange", OID: NumrangeOID, ArrayOID: NumrangeArrayOID},
		{Name: "tsrange", OID: TsrangeOID, ArrayOID: TsrangeArrayOID},
		{Name: "tstzrange", OID: TstzrangeOID, ArrayOID: TstzrangeArrayOID},
		{Name: "daterange", OID: DaterangeOID, ArrayOID: DaterangeArrayOID},
		{Name: "int8range", OID: Int8rangeOID, ArrayOID: Int8rangeArrayOID},
		{Name: "int4multirange", OID: Int4multirangeOID, ArrayOID: Int4multirangeArrayOID, MinServerVersion: "14.0"},
		{Name: "nummultirange", OID: NummultirangeOID, ArrayOID: NummultirangeArrayOID, MinServerVersion: "14.0"},
		{Name: "tsmultirange", OID: TsmultirangeOID, ArrayOID: TsmultirangeArrayOID, MinServerVersion: "14.0"},
		{Name: "tstzmultirange", OID: TstzmultirangeOID, ArrayOID: TstzmultirangeArrayOID, MinServerVersion: "14.0"},
		{Name: "datemultirange", OID: DatemultirangeOID, ArrayOID: DatemultirangeArrayOID, MinServerVersion: "14.0"},
		{Name: "int8multirange", OID: Int8multirangeOID, ArrayOID: Int8multirangeArrayOID, MinServerVersion: "14.0"},
	}

	aliases := map[string]string{
		"boolean":                     "bool",
		"smallint":                    "int2",
		"integer":                     "int4",
		"int":                         "int4",
		"bigint":                      "int8",
		"real":                        "float4",
		"double precision":            "float8",
		"decimal":                     "numeric",
		"character":                   "bpchar",
		"character varying":           "varchar",
		"time without time zone":      "time",
		"timestamp without time zone": "timestamp",
		"timestamp with time zone":    "timestamptz",
	}

	m := make(map[string]BuiltinType, len(types)+len(aliases))
	for _, t := range types {
		m[t.Name] = t
	}
	for alias, name := range aliases {
		m[alias] = m[name]
	}
	return m
}()

// builtinNames maps a type oid to its canonical name.
var builtinNames = func() map[uint32]string {
	m := make(map[uint32]string, len(builtinTypes))
	for name, t := range builtinTypes {
		if name == t.Name {
			m[t.OID] = t.Name
		}
	}
	return m
}()

// LookupBuiltinType returns the built-in type named name. SQL standard
// spellings such as "integer" or "character varying" are accepted.
func LookupBuiltinType(name string) (BuiltinType, bool) {
	t, ok := builtinTypes[name]
	return t, ok
}

// TypeName returns the canonical name of a built-in type oid.
func TypeName(oid uint32) (string, bool) {
	name, ok := builtinNames[oid]
	return name, ok
}
