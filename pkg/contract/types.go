package contract

const (
	DefaultGas           uint64 = 100000
	DefaultReadFunction         = "getNumber"
	DefaultWriteFunction        = "setNumber"
)

type ClientConfig struct {
	OperatorAccountID  string
	OperatorPrivateKey string
	Network            string
	ContractID         string
	Gas                uint64
	ReadFunction       string
	WriteFunction      string
	// MaxQueryPaymentTinybar caps what a read may cost. Zero keeps the SDK
	// default.
	MaxQueryPaymentTinybar int64
}

type ReadQueryParams struct {
	ContractID      string
	Function        string
	Gas             uint64
	CallerAddress   string
	MaxQueryPayment int64
}

type WriteTxParams struct {
	ContractID    string
	Function      string
	Gas           uint64
	Value         []byte
	CallerAddress string
	Memo          string
}
