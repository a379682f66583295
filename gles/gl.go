package gles

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.1/gles2"
)

// CompileError carries the info log of a shader which failed to compile
// or a program which failed to link.
type CompileError struct {
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gles: %s failed: %s", e.Stage, e.Log)
}

type Shader struct {
	shader uint32
}

func GetShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]uint8, length)
	var logLen int32
	gl.GetShaderInfoLog(shader, length, &logLen, &log[0])
	return string(log[:logLen])
}

// CreateShader compiles source, which must be NUL terminated.
func CreateShader(shaderType uint32, source string) (Shader, error) {
	shader := gl.CreateShader(shaderType)
	if shader == 0 {
		return Shader{}, fmt.Errorf("gles: glCreateShader failed: 0x%x", gl.GetError())
	}
	data := gl.Str(source)
	length := int32(len(source))
	gl.ShaderSource(shader, 1, &data, &length)
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := GetShaderInfoLog(shader)
		gl.DeleteShader(shader)
		stage := "vertex shader compilation"
		if shaderType == gl.FRAGMENT_SHADER {
			stage = "fragment shader compilation"
		}
		return Shader{}, &CompileError{Stage: stage, Log: log}
	}
	return Shader{shader}, nil
}

func (s *Shader) Close() error {
	if s.shader != 0 {
		gl.DeleteShader(s.shader)
		s.shader = 0
	}
	return nil
}

// Program is a linked shader program with the locations of the inputs
// every glplot shader declares. Locations are -1 when the shader does not
// use the input.
type Program struct {
	program        uint32
	vertexShader   Shader
	fragmentShader Shader

	aPosition  int32
	uTransform int32
	uColor     int32
	uTime      int32
}

func GetProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]uint8, length)
	var logLen int32
	gl.GetProgramInfoLog(program, length, &logLen, &log[0])
	return string(log[:logLen])
}

func CreateProgram(vertexShader string, fragmentShader string) (*Program, error) {
	vs, err := CreateShader(gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return nil, err
	}
	fs, err := CreateShader(gl.FRAGMENT_SHADER, fragmentShader)
	if err != nil {
		vs.Close()
		return nil, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs.shader)
	gl.AttachShader(program, fs.shader)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := GetProgramInfoLog(program)
		gl.DeleteProgram(program)
		vs.Close()
		fs.Close()
		return nil, &CompileError{Stage: "program link", Log: log}
	}
	p := &Program{
		program:        program,
		vertexShader:   vs,
		fragmentShader: fs,
	}
	p.aPosition = p.GetAttribLocation("position\x00")
	p.uTransform = p.GetUniformLocation("transform\x00")
	p.uColor = p.GetUniformLocation("color\x00")
	p.uTime = p.GetUniformLocation("time\x00")
	return p, nil
}

func (p *Program) GetAttribLocation(name string) int32 {
	return gl.GetAttribLocation(p.program, gl.Str(name))
}

func (p *Program) GetUniformLocation(name string) int32 {
	return gl.GetUniformLocation(p.program, gl.Str(name))
}

func (p *Program) Use() {
	gl.UseProgram(p.program)
}

func (p *Program) Close() error {
	if err := p.vertexShader.Close(); err != nil {
		return err
	}
	if err := p.fragmentShader.Close(); err != nil {
		return err
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
	return nil
}
