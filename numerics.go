package tack

import "fmt"

// numbers unwraps args as Numbers. ok is false if any argument is not a
// Number.
func numbers(args []Value) (nums []int64, ok bool) {
	nums = make([]int64, len(args))
	for i, v := range args {
		n, ok := v.(Number)
		if !ok {
			return nil, false
		}
		nums[i] = int64(n)
	}
	return nums, true
}

func invalidValue(op string) Value {
	return EvalError(op + ": invalid value")
}

func wrongArgs(op string, n int) Value {
	return EvalError(fmt.Sprintf("%v: Wrong number of args (%d)", op, n))
}

func divideByZero(op string) Value {
	return EvalError(op + ": Divide by zero")
}

// NumberAdd returns the sum of its arguments. (+) is 0.
func NumberAdd(args []Value) Value {
	nums, ok := numbers(args)
	if !ok {
		return invalidValue("+")
	}
	sum := int64(0)
	for _, n := range nums {
		sum += n
	}
	return Number(sum)
}

// NumberSub subtracts the remaining arguments from the first. With a single
// argument it returns its negation.
func NumberSub(args []Value) Value {
	nums, ok := numbers(args)
	if !ok {
		return invalidValue("-")
	}
	switch len(nums) {
	case 0:
		return wrongArgs("-", 0)
	case 1:
		return Number(-nums[0])
	}
	diff := nums[0]
	for _, n := range nums[1:] {
		diff -= n
	}
	return Number(diff)
}

// NumberMul returns the product of its arguments. (*) is 1.
func NumberMul(args []Value) Value {
	nums, ok := numbers(args)
	if !ok {
		return invalidValue("*")
	}
	product := int64(1)
	for _, n := range nums {
		product *= n
	}
	return Number(product)
}

// NumberDiv divides the first argument by each of the remaining ones using
// truncated integer division. With a single argument x it returns 1/x.
func NumberDiv(args []Value) Value {
	nums, ok := numbers(args)
	if !ok {
		return invalidValue("/")
	}
	switch len(nums) {
	case 0:
		return wrongArgs("/", 0)
	case 1:
		nums = []int64{1, nums[0]}
	}
	for _, n := range nums[1:] {
		if n == 0 {
			return divideByZero("/")
		}
	}
	quotient := nums[0]
	for _, n := range nums[1:] {
		quotient /= n
	}
	return Number(quotient)
}

// NumberMod returns the truncated remainder of its two arguments. The result
// has the sign of the dividend.
func NumberMod(args []Value) Value {
	nums, ok := numbers(args)
	if !ok {
		return invalidValue("%")
	}
	if len(nums) != 2 {
		return wrongArgs("%", len(nums))
	}
	if nums[1] == 0 {
		return divideByZero("%")
	}
	return Number(nums[0] % nums[1])
}

func compare(op string, args []Value, ordered func(a, b int64) bool) Value {
	nums, ok := numbers(args)
	if !ok {
		return invalidValue(op)
	}
	if len(nums) == 0 {
		return wrongArgs(op, 0)
	}
	for i := 1; i < len(nums); i++ {
		if !ordered(nums[i-1], nums[i]) {
			return Boolean(false)
		}
	}
	return Boolean(true)
}

func NumberLt(args []Value) Value {
	return compare("<", args, func(a, b int64) bool { return a < b })
}

func NumberGt(args []Value) Value {
	return compare(">", args, func(a, b int64) bool { return a > b })
}

func NumberLte(args []Value) Value {
	return compare("<=", args, func(a, b int64) bool { return a <= b })
}

func NumberGte(args []Value) Value {
	return compare(">=", args, func(a, b int64) bool { return a >= b })
}
