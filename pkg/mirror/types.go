package mirror

type AccountInfo struct {
	Account    string         `json:"account"`
	Alias      *string        `json:"alias"`
	EVMAddress string         `json:"evm_address"`
	Deleted    bool           `json:"deleted"`
	Key        map[string]any `json:"key"`
	Memo       string         `json:"memo"`
}

type errorResponse struct {
	Status struct {
		Messages []struct {
			Message string `json:"message"`
		} `json:"messages"`
	} `json:"_status"`
}

// ContractResult is the mirror node record of a contract call, keyed by the
// transaction that carried it.
type ContractResult struct {
	ContractID         string `json:"contract_id"`
	From               string `json:"from"`
	To                 string `json:"to"`
	CallResult         string `json:"call_result"`
	ErrorMessage       string `json:"error_message"`
	FunctionParameters string `json:"function_parameters"`
	GasLimit           int64  `json:"gas_limit"`
	GasUsed            int64  `json:"gas_used"`
	Hash               string `json:"hash"`
	Result             string `json:"result"`
	Status             string `json:"status"`
	Timestamp          string `json:"timestamp"`
}
