package errors

import "fmt"

var (
	// Gerais
	ErrNotFound   = fmt.Errorf("registro não encontrado")
	ErrBadRequest = fmt.Errorf("requisição inválida")

	// Regras do ciclo de vida de manutenções
	ErrEquipmentUnderMaintenance    = fmt.Errorf("equipamento já em manutenção, conclua a última manutenção")
	ErrEquipmentOutOfUse            = fmt.Errorf("equipamento fora de uso")
	ErrInitialMaintenanceImmutable  = fmt.Errorf("não é possível excluir manutenções iniciais")
	ErrInitialMaintenanceDuplicated = fmt.Errorf("equipamento já possui manutenção inicial cadastrada")
	ErrScheduleAnchorMissing        = fmt.Errorf("equipamento sem manutenção concluída para ancorar o cálculo da próxima manutenção")

	// Unicidade
	ErrDuplicateAssetTag    = fmt.Errorf("tombamento já cadastrado")
	ErrDuplicateWorkOrder   = fmt.Errorf("manutenção já cadastrada com este número de ordem de serviço")
	ErrDuplicateClientNum   = fmt.Errorf("número de cliente já cadastrado")
	ErrDuplicateMeterNumber = fmt.Errorf("número de medidor já cadastrado")
)

// InvalidInputError representa um erro de validação de entrada do usuário.
// Nenhuma mutação ocorre quando um erro deste tipo é retornado.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError carrega o código HTTP e a mensagem apresentada ao cliente,
// preservando o erro original para logging.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}
